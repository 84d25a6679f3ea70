package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "abacus-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func mustCreateAssociation(t *testing.T, store *SQLiteStore, name string, initial ...models.Balance) *models.Association {
	t.Helper()

	assoc := &models.Association{Name: name, PasswordHash: "hash"}
	if err := store.CreateAssociation(context.Background(), assoc, initial); err != nil {
		t.Fatalf("CreateAssociation failed: %v", err)
	}
	return assoc
}

func TestCreateAssociation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("generates id and persists initial balances", func(t *testing.T) {
		assoc := mustCreateAssociation(t, store, "Club",
			models.Balance{Name: "Cash", InitialAmount: decimal.RequireFromString("100.0")},
			models.Balance{Name: "Bank", InitialAmount: decimal.RequireFromString("250.5")},
		)

		if assoc.ID == "" {
			t.Error("expected association ID to be generated")
		}

		balances, err := store.ListBalances(ctx, assoc.ID)
		if err != nil {
			t.Fatalf("ListBalances failed: %v", err)
		}
		if len(balances) != 2 {
			t.Fatalf("expected 2 balances, got %d", len(balances))
		}
		for _, b := range balances {
			if b.Position != 0 {
				t.Errorf("expected initial balance at position 0, got %d", b.Position)
			}
			if b.AssociationID != assoc.ID {
				t.Errorf("balance owner mismatch: got %s, want %s", b.AssociationID, assoc.ID)
			}
		}
		if !balances[0].InitialAmount.Equal(decimal.RequireFromString("100.0")) {
			t.Errorf("amount mismatch: got %s", balances[0].InitialAmount)
		}
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		assoc := &models.Association{Name: "Club", PasswordHash: "other"}
		err := store.CreateAssociation(ctx, assoc, nil)
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("lookup by name and id agree", func(t *testing.T) {
		byName, err := store.GetAssociationByName(ctx, "Club")
		if err != nil {
			t.Fatalf("GetAssociationByName failed: %v", err)
		}
		byID, err := store.GetAssociationByID(ctx, byName.ID)
		if err != nil {
			t.Fatalf("GetAssociationByID failed: %v", err)
		}
		if byID.Name != "Club" || byID.ID != byName.ID {
			t.Errorf("lookup mismatch: %+v vs %+v", byID, byName)
		}
	})

	t.Run("unknown lookups return not found", func(t *testing.T) {
		if _, err := store.GetAssociationByName(ctx, "Nobody"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := store.GetAssociationByID(ctx, "missing-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestBalances(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assoc := mustCreateAssociation(t, store, "Sports Club")

	t.Run("first balance lands at position 0", func(t *testing.T) {
		b := &models.Balance{Name: "Cash", InitialAmount: decimal.NewFromInt(10), AssociationID: assoc.ID}
		if err := store.AddBalance(ctx, b); err != nil {
			t.Fatalf("AddBalance failed: %v", err)
		}
		if b.Position != 0 {
			t.Errorf("expected position 0, got %d", b.Position)
		}
	})

	t.Run("position continues after the max, gaps included", func(t *testing.T) {
		// Push existing positions to {0, 2, 5} via update.
		second := &models.Balance{Name: "Bank", InitialAmount: decimal.NewFromInt(20), AssociationID: assoc.ID}
		if err := store.AddBalance(ctx, second); err != nil {
			t.Fatalf("AddBalance failed: %v", err)
		}
		second.Position = 2
		if err := store.UpdateBalance(ctx, second); err != nil {
			t.Fatalf("UpdateBalance failed: %v", err)
		}

		third := &models.Balance{Name: "Savings", InitialAmount: decimal.NewFromInt(30), AssociationID: assoc.ID}
		if err := store.AddBalance(ctx, third); err != nil {
			t.Fatalf("AddBalance failed: %v", err)
		}
		third.Position = 5
		if err := store.UpdateBalance(ctx, third); err != nil {
			t.Fatalf("UpdateBalance failed: %v", err)
		}

		next := &models.Balance{Name: "Petty", InitialAmount: decimal.NewFromInt(1), AssociationID: assoc.ID}
		if err := store.AddBalance(ctx, next); err != nil {
			t.Fatalf("AddBalance failed: %v", err)
		}
		if next.Position != 6 {
			t.Errorf("expected position 6 after {0,2,5}, got %d", next.Position)
		}
	})

	t.Run("positions are scoped per association", func(t *testing.T) {
		other := mustCreateAssociation(t, store, "Chess Club")
		b := &models.Balance{Name: "Cash", InitialAmount: decimal.Zero, AssociationID: other.ID}
		if err := store.AddBalance(ctx, b); err != nil {
			t.Fatalf("AddBalance failed: %v", err)
		}
		if b.Position != 0 {
			t.Errorf("expected fresh association to start at position 0, got %d", b.Position)
		}
	})

	t.Run("update overwrites fields", func(t *testing.T) {
		balances, err := store.ListBalances(ctx, assoc.ID)
		if err != nil {
			t.Fatalf("ListBalances failed: %v", err)
		}
		b := balances[0]
		b.Name = "Renamed"
		b.InitialAmount = decimal.RequireFromString("99.99")
		b.Position = 7

		if err := store.UpdateBalance(ctx, &b); err != nil {
			t.Fatalf("UpdateBalance failed: %v", err)
		}

		got, err := store.GetBalance(ctx, b.ID)
		if err != nil {
			t.Fatalf("GetBalance failed: %v", err)
		}
		if got.Name != "Renamed" || got.Position != 7 || !got.InitialAmount.Equal(b.InitialAmount) {
			t.Errorf("update not persisted: %+v", got)
		}
	})

	t.Run("update and delete of missing balance return not found", func(t *testing.T) {
		missing := &models.Balance{ID: "missing", Name: "x", InitialAmount: decimal.Zero}
		if err := store.UpdateBalance(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := store.DeleteBalance(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestOperations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assoc := mustCreateAssociation(t, store, "Club",
		models.Balance{Name: "Cash", InitialAmount: decimal.NewFromInt(100)},
	)
	balances, err := store.ListBalances(ctx, assoc.ID)
	if err != nil {
		t.Fatalf("ListBalances failed: %v", err)
	}
	cash := balances[0]

	invoice := "INV-2026-001"
	op := &models.Operation{
		Name:        "Membership fees",
		Description: "Q1 collection",
		Group:       "Members",
		Amount:      decimal.RequireFromString("120.50"),
		Type:        models.OperationIncome,
		Date:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Invoice:     &invoice,
		BalanceID:   cash.ID,
	}

	t.Run("create and read back", func(t *testing.T) {
		if err := store.CreateOperation(ctx, op); err != nil {
			t.Fatalf("CreateOperation failed: %v", err)
		}
		if op.ID == "" {
			t.Error("expected operation ID to be generated")
		}

		got, err := store.GetOperation(ctx, op.ID)
		if err != nil {
			t.Fatalf("GetOperation failed: %v", err)
		}
		if got.Name != op.Name || got.Group != op.Group || got.Type != models.OperationIncome {
			t.Errorf("operation mismatch: %+v", got)
		}
		if !got.Amount.Equal(op.Amount) {
			t.Errorf("amount mismatch: got %s, want %s", got.Amount, op.Amount)
		}
		if !got.Date.Equal(op.Date) {
			t.Errorf("date mismatch: got %s, want %s", got.Date, op.Date)
		}
		if got.Invoice == nil || *got.Invoice != invoice {
			t.Errorf("invoice mismatch: got %v", got.Invoice)
		}
	})

	t.Run("nil invoice round-trips", func(t *testing.T) {
		bare := &models.Operation{
			Name:      "Donation",
			Type:      models.OperationIncome,
			Amount:    decimal.NewFromInt(50),
			Date:      time.Now().UTC(),
			BalanceID: cash.ID,
		}
		if err := store.CreateOperation(ctx, bare); err != nil {
			t.Fatalf("CreateOperation failed: %v", err)
		}

		got, err := store.GetOperation(ctx, bare.ID)
		if err != nil {
			t.Fatalf("GetOperation failed: %v", err)
		}
		if got.Invoice != nil {
			t.Errorf("expected nil invoice, got %v", *got.Invoice)
		}
	})

	t.Run("update moves operation between balances", func(t *testing.T) {
		bank := &models.Balance{Name: "Bank", InitialAmount: decimal.Zero, AssociationID: assoc.ID}
		if err := store.AddBalance(ctx, bank); err != nil {
			t.Fatalf("AddBalance failed: %v", err)
		}

		op.BalanceID = bank.ID
		op.Type = models.OperationExpense
		if err := store.UpdateOperation(ctx, op); err != nil {
			t.Fatalf("UpdateOperation failed: %v", err)
		}

		got, err := store.GetOperation(ctx, op.ID)
		if err != nil {
			t.Fatalf("GetOperation failed: %v", err)
		}
		if got.BalanceID != bank.ID || got.Type != models.OperationExpense {
			t.Errorf("update not persisted: %+v", got)
		}
	})

	t.Run("deleting a balance cascades to its operations", func(t *testing.T) {
		doomed := &models.Balance{Name: "Doomed", InitialAmount: decimal.Zero, AssociationID: assoc.ID}
		if err := store.AddBalance(ctx, doomed); err != nil {
			t.Fatalf("AddBalance failed: %v", err)
		}
		orphanable := &models.Operation{
			Name:      "Soon gone",
			Type:      models.OperationExpense,
			Amount:    decimal.NewFromInt(5),
			Date:      time.Now().UTC(),
			BalanceID: doomed.ID,
		}
		if err := store.CreateOperation(ctx, orphanable); err != nil {
			t.Fatalf("CreateOperation failed: %v", err)
		}

		if err := store.DeleteBalance(ctx, doomed.ID); err != nil {
			t.Fatalf("DeleteBalance failed: %v", err)
		}
		if _, err := store.GetOperation(ctx, orphanable.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected cascaded operation to be gone, got %v", err)
		}
	})

	t.Run("delete operation", func(t *testing.T) {
		if err := store.DeleteOperation(ctx, op.ID); err != nil {
			t.Fatalf("DeleteOperation failed: %v", err)
		}
		if _, err := store.GetOperation(ctx, op.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteOperation(ctx, op.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for double delete, got %v", err)
		}
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		ledger := &models.Balance{Name: "Ordered", InitialAmount: decimal.Zero, AssociationID: assoc.ID}
		if err := store.AddBalance(ctx, ledger); err != nil {
			t.Fatalf("AddBalance failed: %v", err)
		}

		names := []string{"first", "second", "third"}
		for _, name := range names {
			o := &models.Operation{
				Name:      name,
				Type:      models.OperationIncome,
				Amount:    decimal.NewFromInt(1),
				Date:      time.Now().UTC(),
				BalanceID: ledger.ID,
			}
			if err := store.CreateOperation(ctx, o); err != nil {
				t.Fatalf("CreateOperation failed: %v", err)
			}
		}

		ops, err := store.ListOperations(ctx, ledger.ID)
		if err != nil {
			t.Fatalf("ListOperations failed: %v", err)
		}
		if len(ops) != len(names) {
			t.Fatalf("expected %d operations, got %d", len(names), len(ops))
		}
		for i, name := range names {
			if ops[i].Name != name {
				t.Errorf("order mismatch at %d: got %s, want %s", i, ops[i].Name, name)
			}
		}
	})
}
