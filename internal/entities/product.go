package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Product struct {
	Name        string
	Description string
	Price       decimal.Decimal
	// Tax множитель к цене, 1.16 означает налог 16%
	Tax   decimal.Decimal
	Stock int
}

func NewProduct(name, description string, price, tax decimal.Decimal, stock int) (*Product, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative, got %s", ErrInvalidArgument, price)
	}
	if tax.IsNegative() {
		return nil, fmt.Errorf("%w: tax multiplier must not be negative, got %s", ErrInvalidArgument, tax)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative, got %d", ErrInvalidArgument, stock)
	}

	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Tax:         tax,
		Stock:       stock,
	}, nil
}

// LineTotal returns the tax-inclusive price of a single unit.
func (p *Product) LineTotal() decimal.Decimal {
	return p.Price.Mul(p.Tax)
}

// ReduceStock takes quantity units out of stock. Stock is left untouched on error.
func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidArgument, quantity)
	}
	if p.Stock < quantity {
		return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, p.Stock)
	}

	p.Stock -= quantity
	return nil
}
