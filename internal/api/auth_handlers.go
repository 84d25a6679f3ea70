package api

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/linoMlv/abacus/internal/middleware"
	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/service"
)

type balanceCreateRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type signupRequest struct {
	Name     string                 `json:"name"`
	Password string                 `json:"password"`
	Balances []balanceCreateRequest `json:"balances"`
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string                  `json:"access_token"`
	TokenType   string                  `json:"token_type"`
	Association *models.AssociationView `json:"association"`
}

// handleSignup registers a new association with its initial balances.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Password == "" {
		WriteError(w, http.StatusUnprocessableEntity, "name and password are required")
		return
	}

	initial := make([]service.BalanceInit, 0, len(req.Balances))
	for _, b := range req.Balances {
		initial = append(initial, service.BalanceInit{Name: b.Name, Amount: b.Amount})
	}

	view, err := s.authService.Signup(r.Context(), req.Name, req.Password, initial)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view)
}

// handleLogin authenticates an association and hands out the bearer token,
// both in the body and as an HttpOnly cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, view, err := s.authService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	ttl := s.jwtManager.TTL()
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "Bearer " + token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	WriteJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Association: view,
	})
}

// handleLogout clears the access token cookie. Tokens are stateless, so
// nothing is revoked server-side.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}

// handleMe returns the caller's own nested view.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAssociation(r.Context())

	view, err := s.ledgerService.CurrentView(r.Context(), caller)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view)
}

// handleGetAssociation returns the nested view of an association by id.
// Only the association itself may read it.
func (s *Server) handleGetAssociation(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAssociation(r.Context())

	view, err := s.ledgerService.GetAssociation(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view)
}
