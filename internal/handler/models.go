package handler

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/order-model/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product товар
type Product struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Tax         decimal.Decimal `json:"tax"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

// Payment платеж, набор обязательных полей зависит от kind
type Payment struct {
	Kind      string          `json:"kind" validate:"required,oneof=cash check card"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`

	Currency string `json:"currency,omitempty" validate:"required_if=Kind cash,omitempty,iso4217"`

	Payer string `json:"payer,omitempty" validate:"required_if=Kind check"`
	Bank  string `json:"bank,omitempty" validate:"required_if=Kind check"`

	CardNumber string     `json:"card_number,omitempty" validate:"required_if=Kind card,omitempty,credit_card"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty" validate:"required_if=Kind card"`
	Network    string     `json:"network,omitempty" validate:"required_if=Kind card"`
}

// Order заказ в том виде, в котором его присылает клиент
type Order struct {
	OrderID   string     `json:"order_id,omitempty" validate:"omitempty,uuid"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Status    string     `json:"status,omitempty" validate:"omitempty,oneof=pending paid processed shipped delivered"`
	Products  []Product  `json:"products" validate:"dive"`
	Payments  []Payment  `json:"payments" validate:"dive"`
}

// Customer покупатель со списком заказов
type Customer struct {
	Name    string  `json:"name" validate:"required"`
	Address string  `json:"address,omitempty"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required,e164"`
	Orders  []Order `json:"orders" validate:"dive"`
}

type UpdateStatusRequest struct {
	Order  Order  `json:"order"`
	Status string `json:"status"`
}

type ReduceStockRequest struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderQuote заказ с посчитанной стоимостью
type OrderQuote struct {
	OrderID   string          `json:"order_id"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	Total     float32         `json:"total"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Paid      decimal.Decimal `json:"paid"`
	Products  []Product       `json:"products"`
	Payments  []Payment       `json:"payments"`
}

type CustomerSummary struct {
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Orders []OrderQuote    `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

func ProductJSONToEntity(p Product) (*entities.Product, error) {
	return entities.NewProduct(p.Name, p.Description, p.Price, p.Tax, p.Stock)
}

func ProductEntityToJSON(p *entities.Product) Product {
	return Product{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Tax:         p.Tax,
		Stock:       p.Stock,
	}
}

func PaymentJSONToEntity(p Payment) (entities.Payment, error) {
	var opts []entities.PaymentOption
	if p.CreatedAt != nil {
		opts = append(opts, entities.PaidAt(*p.CreatedAt))
	}

	switch p.Kind {
	case entities.PaymentCash.String():
		return entities.NewCashPayment(p.Amount, p.Currency, opts...), nil
	case entities.PaymentCheck.String():
		return entities.NewCheckPayment(p.Amount, p.Payer, p.Bank, opts...), nil
	case entities.PaymentCard.String():
		var expires time.Time
		if p.ExpiresAt != nil {
			expires = *p.ExpiresAt
		}
		return entities.NewCardPayment(p.Amount, p.CardNumber, expires, p.Network, opts...), nil
	default:
		return entities.Payment{}, fmt.Errorf("%w: unknown payment kind %q", entities.ErrInvalidArgument, p.Kind)
	}
}

// PaymentEntityToJSON never exposes the full card number.
func PaymentEntityToJSON(p entities.Payment) Payment {
	createdAt := p.CreatedAt
	res := Payment{
		Kind:      p.Kind().String(),
		Amount:    p.Amount,
		CreatedAt: &createdAt,
	}

	switch m := p.Method.(type) {
	case entities.Cash:
		res.Currency = m.Currency
	case entities.Check:
		res.Payer = m.Payer
		res.Bank = m.Bank
	case entities.Card:
		expires := m.ExpiresAt
		res.CardNumber = m.Masked()
		res.ExpiresAt = &expires
		res.Network = m.Network
	}
	return res
}

func OrderJSONToEntity(o Order) (*entities.Order, error) {
	var opts []entities.OrderOption
	if o.OrderID != "" {
		id, err := uuid.Parse(o.OrderID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid order id: %v", entities.ErrInvalidArgument, err)
		}
		opts = append(opts, entities.WithID(id))
	}
	if o.CreatedAt != nil {
		opts = append(opts, entities.WithCreatedAt(*o.CreatedAt))
	}
	if o.Status != "" {
		status, err := entities.ParseOrderStatus(o.Status)
		if err != nil {
			return nil, err
		}
		opts = append(opts, entities.WithStatus(status))
	}

	order, err := entities.NewOrder(opts...)
	if err != nil {
		return nil, err
	}

	for i, p := range o.Products {
		product, err := ProductJSONToEntity(p)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		order.AddProduct(product)
	}
	for i, p := range o.Payments {
		payment, err := PaymentJSONToEntity(p)
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i, err)
		}
		order.AddPayment(payment)
	}

	return order, nil
}

func OrderEntityToQuote(o *entities.Order, total float32) OrderQuote {
	products := make([]Product, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, ProductEntityToJSON(p))
	}
	payments := make([]Payment, 0, len(o.Payments))
	for _, p := range o.Payments {
		payments = append(payments, PaymentEntityToJSON(p))
	}

	return OrderQuote{
		OrderID:   o.ID.String(),
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt,
		Total:     total,
		Subtotal:  o.Subtotal(),
		Paid:      o.Paid(),
		Products:  products,
		Payments:  payments,
	}
}

func CustomerJSONToEntity(c Customer) (*entities.Customer, error) {
	customer := &entities.Customer{
		Name:    c.Name,
		Address: c.Address,
		Email:   c.Email,
		Phone:   c.Phone,
	}
	for i, o := range c.Orders {
		order, err := OrderJSONToEntity(o)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		customer.AddOrder(order)
	}
	return customer, nil
}
