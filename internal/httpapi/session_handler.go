package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/api"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/session"
)

type SessionHandler struct {
	sessions *session.Store
	timeout  time.Duration
}

func NewSessionHandler(sessions *session.Store, timeout time.Duration) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		timeout:  timeout,
	}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequestDTO struct {
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Password        string               `json:"password"`
	ConfirmPassword string               `json:"confirmPassword"`
	Phone           string               `json:"phone"`
	Role            string               `json:"role"`
	BusinessInfo    *domain.BusinessInfo `json:"businessInfo"`
}

type SessionViewDTO struct {
	State string       `json:"state"`
	User  *domain.User `json:"user,omitempty"`
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	res := h.sessions.Login(ctx, req.Email, req.Password)
	if !res.Success {
		respondError(w, http.StatusUnauthorized, "login_failed", res.Message)
		return
	}

	respondJSON(w, http.StatusOK, SessionViewDTO{State: string(h.sessions.State()), User: h.sessions.User()})
}

func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleCustomer
	}

	res := h.sessions.Register(ctx, domain.Registration{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
		Role:            role,
		BusinessInfo:    req.BusinessInfo,
	})
	if !res.Success {
		respondError(w, http.StatusBadRequest, "registration_failed", res.Message)
		return
	}

	respondJSON(w, http.StatusCreated, SessionViewDTO{State: string(h.sessions.State()), User: h.sessions.User()})
}

func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return
	}
	respondJSON(w, http.StatusOK, SessionViewDTO{State: string(h.sessions.State()), User: h.sessions.User()})
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	respondJSON(w, http.StatusOK, domain.Result{Success: true, Message: "Logged out"})
}

func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req api.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	res := h.sessions.UpdateProfile(ctx, req)
	if !res.Success {
		respondError(w, http.StatusBadRequest, "profile_update_failed", res.Message)
		return
	}

	respondJSON(w, http.StatusOK, SessionViewDTO{State: string(h.sessions.State()), User: h.sessions.User()})
}

func (h *SessionHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req api.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	res := h.sessions.ChangePassword(ctx, req)
	if !res.Success {
		respondError(w, http.StatusBadRequest, "password_change_failed", res.Message)
		return
	}

	respondJSON(w, http.StatusOK, res)
}
