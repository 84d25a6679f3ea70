package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/linoMlv/abacus/internal/middleware"
)

type balanceAddRequest struct {
	Name          string          `json:"name"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	AssociationID string          `json:"association_id"`
}

type balanceUpdateRequest struct {
	Name          string          `json:"name"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	Position      int             `json:"position"`
}

// handleAddBalance creates a balance at the next free position.
func (s *Server) handleAddBalance(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAssociation(r.Context())

	var req balanceAddRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		WriteError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	balance, err := s.ledgerService.AddBalance(r.Context(), caller, req.AssociationID, req.Name, req.InitialAmount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, balance)
}

// handleUpdateBalance overwrites the mutable fields of a balance.
func (s *Server) handleUpdateBalance(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAssociation(r.Context())

	var req balanceUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	balance, err := s.ledgerService.UpdateBalance(r.Context(), caller, r.PathValue("id"), req.Name, req.InitialAmount, req.Position)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, balance)
}

// handleDeleteBalance removes a balance and its operations.
func (s *Server) handleDeleteBalance(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAssociation(r.Context())

	if err := s.ledgerService.DeleteBalance(r.Context(), caller, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
