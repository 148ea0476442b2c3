package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SergeyBogomolovv/order-model/internal/config"
	"github.com/SergeyBogomolovv/order-model/internal/demo"
	"github.com/SergeyBogomolovv/order-model/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)

	svc := service.NewOrderService(logger)

	res, err := demo.Run(context.Background(), os.Stdout, svc)
	if err != nil {
		logger.Error("demo failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Debug("demo finished",
		slog.String("order_id", res.Order.ID.String()),
		slog.Int("stock_left", res.Product.Stock),
	)
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
