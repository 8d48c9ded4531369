package models

// OrderStatus values are the wire strings clients already depend on.
type OrderStatus string

const (
	StatusPending       OrderStatus = "in Bearbeitung"
	StatusInPreparation OrderStatus = "in Zubereitung"
	StatusCancelled     OrderStatus = "storniert"
	StatusCompleted     OrderStatus = "abgeschlossen"
)

var orderStatuses = []OrderStatus{StatusPending, StatusInPreparation, StatusCancelled, StatusCompleted}

func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range orderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func (s OrderStatus) IsPending() bool { return s == StatusPending }

func (s OrderStatus) String() string { return string(s) }
