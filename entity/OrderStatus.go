package entity

// OrderStatus is the closed, linear order workflow:
// PENDING -> PREPARING -> DELIVERED. No back-edges, no cancel state.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusDelivered OrderStatus = "DELIVERED"
)

var statusTransitions = map[OrderStatus]OrderStatus{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusDelivered:
		return true
	}
	return false
}

// CanTransitionTo reports whether s -> next is one of the two legal edges.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	n, ok := statusTransitions[s]
	return ok && n == next
}

// Next returns the sole legal successor, if any.
func (s OrderStatus) Next() (OrderStatus, bool) {
	n, ok := statusTransitions[s]
	return n, ok
}
