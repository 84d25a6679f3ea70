package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/storage"
)

// Operation dates are stored as RFC 3339 text so they round-trip with
// sub-second precision and zone offset intact.
const dateFormat = time.RFC3339Nano

// CreateOperation persists a new operation.
func (s *SQLiteStore) CreateOperation(ctx context.Context, op *models.Operation) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (id, name, description, op_group, amount, op_type, op_date, invoice, balance_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		op.ID, op.Name, op.Description, op.Group, op.Amount.String(),
		string(op.Type), op.Date.Format(dateFormat), op.Invoice, op.BalanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert operation: %w", err)
	}

	return nil
}

// GetOperation retrieves an operation by ID.
func (s *SQLiteStore) GetOperation(ctx context.Context, id string) (*models.Operation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, op_group, amount, op_type, op_date, invoice, balance_id
		 FROM operations WHERE id = ?`,
		id,
	)

	op, err := scanOperation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}
	return op, nil
}

// UpdateOperation overwrites an existing operation, including its balance
// reference.
func (s *SQLiteStore) UpdateOperation(ctx context.Context, op *models.Operation) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE operations
		 SET name = ?, description = ?, op_group = ?, amount = ?, op_type = ?, op_date = ?, invoice = ?, balance_id = ?
		 WHERE id = ?`,
		op.Name, op.Description, op.Group, op.Amount.String(),
		string(op.Type), op.Date.Format(dateFormat), op.Invoice, op.BalanceID, op.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}
	return requireRow(res)
}

// DeleteOperation removes an operation.
func (s *SQLiteStore) DeleteOperation(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM operations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	return requireRow(res)
}

// ListOperations returns the operations of a balance in insertion order.
func (s *SQLiteStore) ListOperations(ctx context.Context, balanceID string) ([]models.Operation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, op_group, amount, op_type, op_date, invoice, balance_id
		 FROM operations WHERE balance_id = ? ORDER BY rowid`,
		balanceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var ops []models.Operation
	for rows.Next() {
		op, err := scanOperation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		ops = append(ops, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate operations: %w", err)
	}

	return ops, nil
}

// scanOperation reads one operation row via the given Scan function.
func scanOperation(scan func(dest ...any) error) (*models.Operation, error) {
	op := &models.Operation{}
	var amount, opType, opDate string
	if err := scan(&op.ID, &op.Name, &op.Description, &op.Group,
		&amount, &opType, &opDate, &op.Invoice, &op.BalanceID); err != nil {
		return nil, err
	}

	var err error
	if op.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("failed to parse operation amount: %w", err)
	}
	if op.Date, err = time.Parse(dateFormat, opDate); err != nil {
		return nil, fmt.Errorf("failed to parse operation date: %w", err)
	}
	op.Type = models.OperationType(opType)
	return op, nil
}
