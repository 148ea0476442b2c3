package demo_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/order-model/internal/demo"
	"github.com/SergeyBogomolovv/order-model/internal/entities"
	"github.com/SergeyBogomolovv/order-model/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	svc := service.NewOrderService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	res, err := demo.Run(context.Background(), &out, svc)
	require.NoError(t, err)

	line := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(line, "Total cost: "), line)

	printed, err := strconv.ParseFloat(strings.TrimPrefix(line, "Total cost: "), 32)
	require.NoError(t, err)
	assert.InDelta(t, 1159.99, printed, 0.005)
	assert.Equal(t, res.Total, float32(printed))

	assert.Equal(t, 9, res.Product.Stock)
	assert.Equal(t, entities.StatusPending, res.Order.Status)
	require.Len(t, res.Order.Payments, 1)
	assert.Equal(t, entities.PaymentCash, res.Order.Payments[0].Kind())
	assert.Equal(t, "1200", res.Order.Paid().String())

	err = res.Product.ReduceStock(20)
	assert.ErrorIs(t, err, entities.ErrInsufficientStock)
	assert.Equal(t, 9, res.Product.Stock)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRun_WriteError(t *testing.T) {
	svc := service.NewOrderService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := demo.Run(context.Background(), failingWriter{}, svc)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
