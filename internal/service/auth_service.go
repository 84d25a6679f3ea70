// Package service implements the ledger domain logic: signup and login,
// balance and operation mutations with tenant ownership checks, and the
// nested association view assembly.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/linoMlv/abacus/internal/auth"
	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/storage"
)

// BalanceInit is an initial balance supplied at signup.
type BalanceInit struct {
	Name   string
	Amount decimal.Decimal
}

// AuthService handles association signup and login.
type AuthService struct {
	store      storage.Store
	jwtManager *auth.JWTManager
	logger     *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store storage.Store, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:      store,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Signup registers a new association with its initial balances and returns
// the nested view. Returns storage.ErrConflict if the name is taken,
// regardless of the rest of the payload.
//
// Every initial balance is persisted at position 0. That mirrors the
// historical behavior clients rely on for first-login ordering; explicit
// adds get sequential positions instead.
func (s *AuthService) Signup(ctx context.Context, name, password string, initial []BalanceInit) (*models.AssociationView, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	assoc := &models.Association{
		Name:         name,
		PasswordHash: hash,
	}

	balances := make([]models.Balance, 0, len(initial))
	for _, b := range initial {
		balances = append(balances, models.Balance{
			Name:          b.Name,
			InitialAmount: b.Amount,
			Position:      0,
		})
	}

	if err := s.store.CreateAssociation(ctx, assoc, balances); err != nil {
		return nil, err
	}

	s.logger.Info("association registered", "association_id", assoc.ID, "name", assoc.Name)
	return projectAssociation(ctx, s.store, assoc)
}

// Login verifies the credentials and returns a bearer token together with
// the association view. Unknown name and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, name, password string) (string, *models.AssociationView, error) {
	assoc, err := s.store.GetAssociationByName(ctx, name)
	if err != nil {
		return "", nil, auth.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, assoc.PasswordHash) {
		return "", nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Issue(assoc.Name)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	view, err := projectAssociation(ctx, s.store, assoc)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("association logged in", "association_id", assoc.ID, "name", assoc.Name)
	return token, view, nil
}
