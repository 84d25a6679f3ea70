package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/storage"
)

// AddBalance inserts a new balance at the next free position for its owner.
// The MAX(position) read and the insert share one transaction; without that,
// two concurrent adds could both read the same max and claim the same slot.
func (s *SQLiteStore) AddBalance(ctx context.Context, balance *models.Balance) error {
	if balance.ID == "" {
		balance.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM balances WHERE association_id = ?",
		balance.AssociationID,
	).Scan(&balance.Position)
	if err != nil {
		return fmt.Errorf("failed to compute balance position: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO balances (id, name, initial_amount, position, association_id) VALUES (?, ?, ?, ?, ?)",
		balance.ID, balance.Name, balance.InitialAmount.String(), balance.Position, balance.AssociationID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetBalance retrieves a balance by ID.
func (s *SQLiteStore) GetBalance(ctx context.Context, id string) (*models.Balance, error) {
	balance := &models.Balance{}
	var amount string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, initial_amount, position, association_id FROM balances WHERE id = ?",
		id,
	).Scan(&balance.ID, &balance.Name, &amount, &balance.Position, &balance.AssociationID)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	balance.InitialAmount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance amount: %w", err)
	}
	return balance, nil
}

// UpdateBalance overwrites name, initial amount and position of a balance.
// The owning association never changes.
func (s *SQLiteStore) UpdateBalance(ctx context.Context, balance *models.Balance) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE balances SET name = ?, initial_amount = ?, position = ? WHERE id = ?",
		balance.Name, balance.InitialAmount.String(), balance.Position, balance.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return requireRow(res)
}

// DeleteBalance removes a balance; its operations go with it via the
// ON DELETE CASCADE foreign key.
func (s *SQLiteStore) DeleteBalance(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM balances WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete balance: %w", err)
	}
	return requireRow(res)
}

// ListBalances returns the balances of an association in insertion order.
func (s *SQLiteStore) ListBalances(ctx context.Context, associationID string) ([]models.Balance, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, initial_amount, position, association_id FROM balances WHERE association_id = ? ORDER BY rowid",
		associationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	defer rows.Close()

	var balances []models.Balance
	for rows.Next() {
		var b models.Balance
		var amount string
		if err := rows.Scan(&b.ID, &b.Name, &amount, &b.Position, &b.AssociationID); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		if b.InitialAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse balance amount: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}

	return balances, nil
}

// requireRow maps a zero-row write to storage.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
