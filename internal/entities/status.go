package entities

import "fmt"

// OrderStatus стадия выполнения заказа. Нулевое значение - StatusPending.
type OrderStatus uint8

const (
	StatusPending OrderStatus = iota
	StatusPaid
	StatusProcessed
	StatusShipped
	StatusDelivered
)

var statusNames = [...]string{
	StatusPending:   "pending",
	StatusPaid:      "paid",
	StatusProcessed: "processed",
	StatusShipped:   "shipped",
	StatusDelivered: "delivered",
}

// OrderStatuses returns every valid status in fulfillment order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusPaid, StatusProcessed, StatusShipped, StatusDelivered}
}

func (s OrderStatus) Valid() bool {
	return int(s) < len(statusNames)
}

func (s OrderStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("OrderStatus(%d)", uint8(s))
	}
	return statusNames[s]
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for i, name := range statusNames {
		if name == s {
			return OrderStatus(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown order status %q", ErrInvalidArgument, s)
}

func (s OrderStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %d", ErrInvalidArgument, uint8(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *OrderStatus) UnmarshalText(text []byte) error {
	status, err := ParseOrderStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}
