package api

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/linoMlv/abacus/internal/middleware"
	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/service"
)

// operationRequest is the payload for both create and update.
type operationRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Group       string               `json:"group"`
	Amount      decimal.Decimal      `json:"amount"`
	Type        models.OperationType `json:"type"`
	Date        time.Time            `json:"date"`
	BalanceID   string               `json:"balance_id"`
	Invoice     *string              `json:"invoice"`
}

func (req *operationRequest) toInput() service.OperationInput {
	return service.OperationInput{
		Name:        req.Name,
		Description: req.Description,
		Group:       req.Group,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        req.Date,
		Invoice:     req.Invoice,
		BalanceID:   req.BalanceID,
	}
}

// decodeOperation parses and validates an operation payload.
func decodeOperation(w http.ResponseWriter, r *http.Request) (*operationRequest, bool) {
	var req operationRequest
	if !decodeBody(w, r, &req) {
		return nil, false
	}
	if !req.Type.Valid() {
		WriteError(w, http.StatusUnprocessableEntity, "type must be income or expense")
		return nil, false
	}
	return &req, true
}

// handleCreateOperation records an operation against a caller-owned balance.
func (s *Server) handleCreateOperation(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAssociation(r.Context())

	req, ok := decodeOperation(w, r)
	if !ok {
		return
	}

	op, err := s.ledgerService.CreateOperation(r.Context(), caller, req.toInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, op)
}

// handleUpdateOperation overwrites an operation; moving it to another balance
// re-checks ownership of the target.
func (s *Server) handleUpdateOperation(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAssociation(r.Context())

	req, ok := decodeOperation(w, r)
	if !ok {
		return
	}

	op, err := s.ledgerService.UpdateOperation(r.Context(), caller, r.PathValue("id"), req.toInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, op)
}

// handleDeleteOperation removes an operation.
func (s *Server) handleDeleteOperation(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAssociation(r.Context())

	if err := s.ledgerService.DeleteOperation(r.Context(), caller, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
