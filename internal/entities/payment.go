package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentKind uint8

const (
	PaymentCash PaymentKind = iota + 1
	PaymentCheck
	PaymentCard
)

func (k PaymentKind) String() string {
	switch k {
	case PaymentCash:
		return "cash"
	case PaymentCheck:
		return "check"
	case PaymentCard:
		return "card"
	default:
		return fmt.Sprintf("PaymentKind(%d)", uint8(k))
	}
}

// PaymentMethod вариант платежа. Реализуется только Cash, Check и Card.
type PaymentMethod interface {
	Kind() PaymentKind
	paymentMethod()
}

type Cash struct {
	Currency string
}

type Check struct {
	Payer string
	Bank  string
}

type Card struct {
	Number    string
	ExpiresAt time.Time
	Network   string
}

func (Cash) Kind() PaymentKind  { return PaymentCash }
func (Check) Kind() PaymentKind { return PaymentCheck }
func (Card) Kind() PaymentKind  { return PaymentCard }

func (Cash) paymentMethod()  {}
func (Check) paymentMethod() {}
func (Card) paymentMethod()  {}

// Masked returns the card number with everything but the last four digits hidden.
func (c Card) Masked() string {
	if len(c.Number) <= 4 {
		return c.Number
	}
	return "**** " + c.Number[len(c.Number)-4:]
}

type Payment struct {
	CreatedAt time.Time
	Amount    decimal.Decimal
	Method    PaymentMethod
}

func (p Payment) Kind() PaymentKind {
	if p.Method == nil {
		return 0
	}
	return p.Method.Kind()
}

type PaymentOption func(*Payment)

// PaidAt overrides the creation date, which otherwise defaults to time.Now.
func PaidAt(t time.Time) PaymentOption {
	return func(p *Payment) {
		p.CreatedAt = t
	}
}

func NewCashPayment(amount decimal.Decimal, currency string, opts ...PaymentOption) Payment {
	return newPayment(amount, Cash{Currency: currency}, opts)
}

func NewCheckPayment(amount decimal.Decimal, payer, bank string, opts ...PaymentOption) Payment {
	return newPayment(amount, Check{Payer: payer, Bank: bank}, opts)
}

func NewCardPayment(amount decimal.Decimal, number string, expiresAt time.Time, network string, opts ...PaymentOption) Payment {
	return newPayment(amount, Card{Number: number, ExpiresAt: expiresAt, Network: network}, opts)
}

func newPayment(amount decimal.Decimal, method PaymentMethod, opts []PaymentOption) Payment {
	p := Payment{
		CreatedAt: time.Now(),
		Amount:    amount,
		Method:    method,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
