package models

import "github.com/shopspring/decimal"

// BalanceView is a balance together with its operations, as returned to clients.
type BalanceView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	Position      int             `json:"position"`
	Operations    []Operation     `json:"operations"`
}

// AssociationView is the nested tenant view returned by read endpoints:
// the association, its balances with their operations, and a flattened
// list of all operations across balances.
//
// The flattened Operations list is derived from Balances in iteration
// order; it is a convenience for clients, not a separate source of truth.
type AssociationView struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Balances   []BalanceView `json:"balances"`
	Operations []Operation   `json:"operations"`
}

// NewAssociationView assembles the nested view from an association and its
// balances, each paired with the operations recorded against it. Balances
// and operations keep the order they were handed in; the flattened list
// walks balances first, then each balance's operations.
func NewAssociationView(assoc *Association, balances []Balance, opsByBalance map[string][]Operation) *AssociationView {
	view := &AssociationView{
		ID:         assoc.ID,
		Name:       assoc.Name,
		Balances:   make([]BalanceView, 0, len(balances)),
		Operations: []Operation{},
	}
	for _, b := range balances {
		ops := opsByBalance[b.ID]
		if ops == nil {
			ops = []Operation{}
		}
		view.Balances = append(view.Balances, BalanceView{
			ID:            b.ID,
			Name:          b.Name,
			InitialAmount: b.InitialAmount,
			Position:      b.Position,
			Operations:    ops,
		})
		view.Operations = append(view.Operations, ops...)
	}
	return view
}
