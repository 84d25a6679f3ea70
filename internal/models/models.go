package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The API serves amounts as JSON numbers (100.0, not "100.0") for
	// compatibility with existing clients.
	decimal.MarshalJSONWithoutQuotes = true
}

// OperationType classifies an operation as money coming in or going out.
type OperationType string

const (
	OperationIncome  OperationType = "income"
	OperationExpense OperationType = "expense"
)

// Valid reports whether t is one of the known operation types.
func (t OperationType) Valid() bool {
	return t == OperationIncome || t == OperationExpense
}

// Association is a tenant organization and the authentication principal.
// Name doubles as the login identifier and is unique across tenants.
type Association struct {
	// ID is the unique identifier (UUID format).
	ID string `json:"id"`

	// Name is the unique login name of the association.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the association's password.
	// Never serialized in API responses.
	PasswordHash string `json:"-"`
}

// Balance is a named account bucket owned by exactly one association.
// The owner never changes after creation.
type Balance struct {
	// ID is the unique identifier (UUID format).
	ID string `json:"id"`

	// Name is the display name of the balance (e.g., "Cash", "Bank").
	Name string `json:"name"`

	// InitialAmount is the starting amount of the balance.
	InitialAmount decimal.Decimal `json:"initialAmount"`

	// Position is the explicit display order among the owner's balances.
	// Not guaranteed unique; clients may assign arbitrary values on update.
	Position int `json:"position"`

	// AssociationID references the owning association.
	AssociationID string `json:"association_id"`
}

// Operation is a single income or expense transaction against a balance.
// It may be reassigned to another balance of the same association.
type Operation struct {
	// ID is the unique identifier (UUID format).
	ID string `json:"id"`

	// Name is the short label of the operation.
	Name string `json:"name"`

	// Description is free text.
	Description string `json:"description"`

	// Group is a free-text category label.
	Group string `json:"group"`

	// Amount is the signed monetary amount.
	Amount decimal.Decimal `json:"amount"`

	// Type is income or expense.
	Type OperationType `json:"type"`

	// Date is when the operation took place.
	Date time.Time `json:"date"`

	// Invoice is an optional invoice reference.
	Invoice *string `json:"invoice"`

	// BalanceID references the balance the operation is recorded against.
	BalanceID string `json:"balance_id"`
}
