package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Status    OrderStatus

	// Продукты хранятся по указателю: изменение остатка видно всем заказам
	Products []*Product
	Payments []Payment
}

type OrderOption func(*Order) error

func WithCreatedAt(t time.Time) OrderOption {
	return func(o *Order) error {
		o.CreatedAt = t
		return nil
	}
}

func WithStatus(s OrderStatus) OrderOption {
	return func(o *Order) error {
		return o.UpdateStatus(s)
	}
}

func WithID(id uuid.UUID) OrderOption {
	return func(o *Order) error {
		o.ID = id
		return nil
	}
}

// NewOrder creates a pending order stamped with the current time.
func NewOrder(opts ...OrderOption) (*Order, error) {
	o := &Order{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Status:    StatusPending,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Order) AddProduct(p *Product) {
	o.Products = append(o.Products, p)
}

func (o *Order) AddPayment(p Payment) {
	o.Payments = append(o.Payments, p)
}

// Subtotal returns the exact sum of tax-inclusive prices of all products.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.LineTotal())
	}
	return total
}

// ComputeTotal returns Subtotal reduced to single precision.
func (o *Order) ComputeTotal() float32 {
	return float32(o.Subtotal().InexactFloat64())
}

func (o *Order) Paid() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range o.Payments {
		paid = paid.Add(p.Amount)
	}
	return paid
}

// UpdateStatus accepts any valid status regardless of the current one.
func (o *Order) UpdateStatus(s OrderStatus) error {
	if !s.Valid() {
		return fmt.Errorf("%w: unknown order status %d", ErrInvalidArgument, uint8(s))
	}
	o.Status = s
	return nil
}
