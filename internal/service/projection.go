package service

import (
	"context"

	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/storage"
)

// projectAssociation assembles the nested association view: balances in
// storage order, each carrying its operations in insertion order, plus the
// flattened operations list derived from that same iteration. Nothing is
// re-sorted here.
func projectAssociation(ctx context.Context, store storage.Store, assoc *models.Association) (*models.AssociationView, error) {
	balances, err := store.ListBalances(ctx, assoc.ID)
	if err != nil {
		return nil, err
	}

	opsByBalance := make(map[string][]models.Operation, len(balances))
	for _, b := range balances {
		ops, err := store.ListOperations(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		opsByBalance[b.ID] = ops
	}

	return models.NewAssociationView(assoc, balances, opsByBalance), nil
}
