package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewAssociationView(t *testing.T) {
	assoc := &Association{ID: "a1", Name: "Club"}
	balances := []Balance{
		{ID: "b1", Name: "Cash", InitialAmount: decimal.NewFromInt(10), AssociationID: "a1"},
		{ID: "b2", Name: "Bank", InitialAmount: decimal.NewFromInt(20), AssociationID: "a1"},
	}
	ops := map[string][]Operation{
		"b1": {{ID: "o1", BalanceID: "b1"}, {ID: "o2", BalanceID: "b1"}},
		"b2": {{ID: "o3", BalanceID: "b2"}},
	}

	view := NewAssociationView(assoc, balances, ops)

	if view.ID != "a1" || view.Name != "Club" {
		t.Errorf("association fields not carried: %+v", view)
	}
	if len(view.Balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(view.Balances))
	}
	if len(view.Balances[0].Operations) != 2 || len(view.Balances[1].Operations) != 1 {
		t.Errorf("nested operations miscounted: %+v", view.Balances)
	}

	// Flattened list walks balances in order, then their operations in order.
	want := []string{"o1", "o2", "o3"}
	if len(view.Operations) != len(want) {
		t.Fatalf("expected %d flattened operations, got %d", len(want), len(view.Operations))
	}
	for i, id := range want {
		if view.Operations[i].ID != id {
			t.Errorf("flattened order mismatch at %d: got %s, want %s", i, view.Operations[i].ID, id)
		}
	}
}

func TestNewAssociationViewEmpty(t *testing.T) {
	view := NewAssociationView(&Association{ID: "a1", Name: "Empty"}, nil, nil)

	// JSON clients expect arrays, not nulls.
	if view.Balances == nil || view.Operations == nil {
		t.Error("expected empty slices, got nil")
	}
	if len(view.Balances) != 0 || len(view.Operations) != 0 {
		t.Errorf("expected empty view, got %+v", view)
	}
}

func TestOperationTypeValid(t *testing.T) {
	if !OperationIncome.Valid() || !OperationExpense.Valid() {
		t.Error("expected income and expense to be valid")
	}
	if OperationType("transfer").Valid() || OperationType("").Valid() {
		t.Error("expected unknown types to be invalid")
	}
}
