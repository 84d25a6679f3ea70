// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/linoMlv/abacus/internal/models"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a uniqueness rule is violated, e.g. an
	// association name that is already taken.
	ErrConflict = errors.New("already exists")
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateAssociation persists a new association together with its initial
	// balances in one transaction. Returns ErrConflict if the name is taken.
	CreateAssociation(ctx context.Context, assoc *models.Association, initial []models.Balance) error

	// GetAssociationByID retrieves an association by its ID.
	GetAssociationByID(ctx context.Context, id string) (*models.Association, error)

	// GetAssociationByName retrieves an association by its unique name.
	GetAssociationByName(ctx context.Context, name string) (*models.Association, error)

	// AddBalance persists a new balance, assigning it the next free position
	// among the owner's balances. The position read and the insert run in the
	// same transaction so concurrent adds cannot race to the same position.
	AddBalance(ctx context.Context, balance *models.Balance) error

	// GetBalance retrieves a balance by its ID.
	GetBalance(ctx context.Context, id string) (*models.Balance, error)

	// UpdateBalance overwrites the mutable fields of an existing balance.
	UpdateBalance(ctx context.Context, balance *models.Balance) error

	// DeleteBalance removes a balance. Operations recorded against it are
	// cascade-deleted.
	DeleteBalance(ctx context.Context, id string) error

	// ListBalances returns the balances of an association in insertion order.
	ListBalances(ctx context.Context, associationID string) ([]models.Balance, error)

	// CreateOperation persists a new operation.
	CreateOperation(ctx context.Context, op *models.Operation) error

	// GetOperation retrieves an operation by its ID.
	GetOperation(ctx context.Context, id string) (*models.Operation, error)

	// UpdateOperation overwrites an existing operation, including a possible
	// balance reassignment.
	UpdateOperation(ctx context.Context, op *models.Operation) error

	// DeleteOperation removes an operation.
	DeleteOperation(ctx context.Context, id string) error

	// ListOperations returns the operations of a balance in insertion order.
	ListOperations(ctx context.Context, balanceID string) ([]models.Operation, error)

	// Close releases any resources held by the store.
	Close() error
}
