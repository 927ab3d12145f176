package entity

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	all := []OrderStatus{StatusPending, StatusPreparing, StatusDelivered}

	legal := map[[2]OrderStatus]bool{
		{StatusPending, StatusPreparing}:   true,
		{StatusPreparing, StatusDelivered}: true,
	}

	for _, from := range all {
		for _, to := range all {
			want := legal[[2]OrderStatus{from, to}]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s -> %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestOrderStatusNext(t *testing.T) {
	if next, ok := StatusPending.Next(); !ok || next != StatusPreparing {
		t.Errorf("Next(PENDING) = %s, %v", next, ok)
	}
	if next, ok := StatusPreparing.Next(); !ok || next != StatusDelivered {
		t.Errorf("Next(PREPARING) = %s, %v", next, ok)
	}
	if _, ok := StatusDelivered.Next(); ok {
		t.Error("DELIVERED is terminal")
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusPreparing, StatusDelivered} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("CANCELLED").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleCustomer, RoleRestaurant, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("rider").Valid() {
		t.Error("unknown role should be invalid")
	}
}
