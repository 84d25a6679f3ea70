package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/storage"
)

// OperationInput carries the full set of mutable operation fields for both
// create and update, original and updated payloads being identical.
type OperationInput struct {
	Name        string
	Description string
	Group       string
	Amount      decimal.Decimal
	Type        models.OperationType
	Date        time.Time
	Invoice     *string
	BalanceID   string
}

// LedgerService implements balance and operation mutations plus tenant-scoped
// reads. Every method takes the authenticated caller and fails fast on the
// first precondition (existence, then ownership) before any write.
type LedgerService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(store storage.Store, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		store:  store,
		logger: logger,
	}
}

// CurrentView returns the caller's own nested view.
func (s *LedgerService) CurrentView(ctx context.Context, caller *models.Association) (*models.AssociationView, error) {
	return projectAssociation(ctx, s.store, caller)
}

// GetAssociation returns the nested view of the given association.
// Callers may only read themselves.
func (s *LedgerService) GetAssociation(ctx context.Context, caller *models.Association, id string) (*models.AssociationView, error) {
	if caller.ID != id {
		return nil, fmt.Errorf("%w to view this association", ErrForbidden)
	}

	assoc, err := s.store.GetAssociationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("association %w", err)
	}

	return projectAssociation(ctx, s.store, assoc)
}

// AddBalance creates a balance for the caller's association at the next free
// position. The requested association must be the caller's own.
func (s *LedgerService) AddBalance(ctx context.Context, caller *models.Association, associationID, name string, initialAmount decimal.Decimal) (*models.Balance, error) {
	if associationID != caller.ID {
		return nil, fmt.Errorf("%w to add balance to this association", ErrForbidden)
	}

	balance := &models.Balance{
		Name:          name,
		InitialAmount: initialAmount,
		AssociationID: associationID,
	}
	if err := s.store.AddBalance(ctx, balance); err != nil {
		return nil, err
	}

	s.logger.Info("balance added",
		"balance_id", balance.ID,
		"association_id", associationID,
		"position", balance.Position,
	)
	return balance, nil
}

// UpdateBalance overwrites name, initial amount and position of a caller-owned
// balance. Position is taken as-is; neither uniqueness nor contiguity is
// enforced.
func (s *LedgerService) UpdateBalance(ctx context.Context, caller *models.Association, id, name string, initialAmount decimal.Decimal, position int) (*models.Balance, error) {
	balance, err := s.store.GetBalance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("balance %w", err)
	}
	if balance.AssociationID != caller.ID {
		return nil, fmt.Errorf("%w to update this balance", ErrForbidden)
	}

	balance.Name = name
	balance.InitialAmount = initialAmount
	balance.Position = position
	if err := s.store.UpdateBalance(ctx, balance); err != nil {
		return nil, err
	}

	return balance, nil
}

// DeleteBalance removes a caller-owned balance and, with it, every operation
// recorded against it.
func (s *LedgerService) DeleteBalance(ctx context.Context, caller *models.Association, id string) error {
	balance, err := s.store.GetBalance(ctx, id)
	if err != nil {
		return fmt.Errorf("balance %w", err)
	}
	if balance.AssociationID != caller.ID {
		return fmt.Errorf("%w to delete this balance", ErrForbidden)
	}

	if err := s.store.DeleteBalance(ctx, id); err != nil {
		return err
	}

	s.logger.Info("balance deleted", "balance_id", id, "association_id", caller.ID)
	return nil
}

// CreateOperation records a new operation against a caller-owned balance.
func (s *LedgerService) CreateOperation(ctx context.Context, caller *models.Association, in OperationInput) (*models.Operation, error) {
	balance, err := s.store.GetBalance(ctx, in.BalanceID)
	if err != nil {
		return nil, fmt.Errorf("balance %w", err)
	}
	if balance.AssociationID != caller.ID {
		return nil, fmt.Errorf("%w to add operation to this balance", ErrForbidden)
	}

	op := &models.Operation{
		Name:        in.Name,
		Description: in.Description,
		Group:       in.Group,
		Amount:      in.Amount,
		Type:        in.Type,
		Date:        in.Date,
		Invoice:     in.Invoice,
		BalanceID:   in.BalanceID,
	}
	if err := s.store.CreateOperation(ctx, op); err != nil {
		return nil, err
	}

	s.logger.Info("operation created", "operation_id", op.ID, "balance_id", op.BalanceID)
	return op, nil
}

// UpdateOperation overwrites a caller-owned operation. Moving it to another
// balance re-checks that the target balance belongs to the caller too.
func (s *LedgerService) UpdateOperation(ctx context.Context, caller *models.Association, id string, in OperationInput) (*models.Operation, error) {
	op, err := s.store.GetOperation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("operation %w", err)
	}

	balance, err := s.store.GetBalance(ctx, op.BalanceID)
	if err != nil || balance.AssociationID != caller.ID {
		return nil, fmt.Errorf("%w to update this operation", ErrForbidden)
	}

	if in.BalanceID != op.BalanceID {
		target, err := s.store.GetBalance(ctx, in.BalanceID)
		if err != nil || target.AssociationID != caller.ID {
			return nil, fmt.Errorf("%w to move to this balance", ErrForbidden)
		}
	}

	op.Name = in.Name
	op.Description = in.Description
	op.Group = in.Group
	op.Amount = in.Amount
	op.Type = in.Type
	op.Date = in.Date
	op.Invoice = in.Invoice
	op.BalanceID = in.BalanceID
	if err := s.store.UpdateOperation(ctx, op); err != nil {
		return nil, err
	}

	return op, nil
}

// DeleteOperation removes a caller-owned operation.
func (s *LedgerService) DeleteOperation(ctx context.Context, caller *models.Association, id string) error {
	op, err := s.store.GetOperation(ctx, id)
	if err != nil {
		return fmt.Errorf("operation %w", err)
	}

	balance, err := s.store.GetBalance(ctx, op.BalanceID)
	if err != nil || balance.AssociationID != caller.ID {
		return fmt.Errorf("%w to delete this operation", ErrForbidden)
	}

	if err := s.store.DeleteOperation(ctx, id); err != nil {
		return err
	}

	s.logger.Info("operation deleted", "operation_id", id, "association_id", caller.ID)
	return nil
}
