package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/storage"
)

// CreateAssociation persists a new association and its initial balances in a
// single transaction. The name-taken check runs inside the transaction so two
// concurrent signups with the same name cannot both succeed; the UNIQUE
// constraint on associations.name backstops it.
func (s *SQLiteStore) CreateAssociation(ctx context.Context, assoc *models.Association, initial []models.Balance) error {
	if assoc.ID == "" {
		assoc.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var taken bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM associations WHERE name = ?)",
		assoc.Name,
	).Scan(&taken)
	if err != nil {
		return fmt.Errorf("failed to check association name: %w", err)
	}
	if taken {
		return storage.ErrConflict
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO associations (id, name, password_hash) VALUES (?, ?, ?)",
		assoc.ID, assoc.Name, assoc.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to insert association: %w", err)
	}

	for i := range initial {
		b := &initial[i]
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		b.AssociationID = assoc.ID

		_, err = tx.ExecContext(ctx,
			"INSERT INTO balances (id, name, initial_amount, position, association_id) VALUES (?, ?, ?, ?, ?)",
			b.ID, b.Name, b.InitialAmount.String(), b.Position, b.AssociationID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert initial balance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAssociationByID retrieves an association by ID.
func (s *SQLiteStore) GetAssociationByID(ctx context.Context, id string) (*models.Association, error) {
	return s.getAssociation(ctx,
		"SELECT id, name, password_hash FROM associations WHERE id = ?", id)
}

// GetAssociationByName retrieves an association by its unique name.
func (s *SQLiteStore) GetAssociationByName(ctx context.Context, name string) (*models.Association, error) {
	return s.getAssociation(ctx,
		"SELECT id, name, password_hash FROM associations WHERE name = ?", name)
}

func (s *SQLiteStore) getAssociation(ctx context.Context, query, arg string) (*models.Association, error) {
	assoc := &models.Association{}
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&assoc.ID, &assoc.Name, &assoc.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get association: %w", err)
	}
	return assoc, nil
}
