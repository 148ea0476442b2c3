package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-model/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentVariants(t *testing.T) {
	amount := decimal.NewFromInt(1200)
	expires := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)

	before := time.Now()
	payments := []entities.Payment{
		entities.NewCashPayment(amount, "USD"),
		entities.NewCheckPayment(amount, "John Doe", "BBVA"),
		entities.NewCardPayment(amount, "4111111111111111", expires, "visa"),
	}

	wantKinds := []entities.PaymentKind{entities.PaymentCash, entities.PaymentCheck, entities.PaymentCard}
	for i, p := range payments {
		assert.Equal(t, wantKinds[i], p.Kind())
		assert.True(t, amount.Equal(p.Amount))
		assert.False(t, p.CreatedAt.Before(before))
	}

	switch m := payments[0].Method.(type) {
	case entities.Cash:
		assert.Equal(t, "USD", m.Currency)
	default:
		t.Fatalf("unexpected method %T", m)
	}

	check, ok := payments[1].Method.(entities.Check)
	require.True(t, ok)
	assert.Equal(t, "John Doe", check.Payer)
	assert.Equal(t, "BBVA", check.Bank)

	card, ok := payments[2].Method.(entities.Card)
	require.True(t, ok)
	assert.Equal(t, expires, card.ExpiresAt)
	assert.Equal(t, "visa", card.Network)
	assert.Equal(t, "**** 1111", card.Masked())
}

func TestPaidAt(t *testing.T) {
	at := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	p := entities.NewCashPayment(decimal.NewFromInt(1), "EUR", entities.PaidAt(at))
	assert.Equal(t, at, p.CreatedAt)
}

func TestPaymentKind_String(t *testing.T) {
	assert.Equal(t, "cash", entities.PaymentCash.String())
	assert.Equal(t, "check", entities.PaymentCheck.String())
	assert.Equal(t, "card", entities.PaymentCard.String())
	assert.Equal(t, "PaymentKind(0)", entities.Payment{}.Kind().String())
}

func TestCard_MaskedShortNumber(t *testing.T) {
	assert.Equal(t, "123", entities.Card{Number: "123"}.Masked())
}
