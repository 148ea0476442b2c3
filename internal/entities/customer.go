package entities

import "github.com/shopspring/decimal"

type Customer struct {
	Name    string
	Address string
	Email   string
	Phone   string
	Orders  []*Order
}

func (c *Customer) AddOrder(o *Order) {
	c.Orders = append(c.Orders, o)
}

// Total returns the exact sum of all order subtotals.
func (c *Customer) Total() decimal.Decimal {
	total := decimal.Zero
	for _, o := range c.Orders {
		total = total.Add(o.Subtotal())
	}
	return total
}
