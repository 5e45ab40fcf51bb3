package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/api"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/session"
)

// AccountAPI is what the account handler needs from the marketplace client.
// Consumers define this interface, not the client implementation.
type AccountAPI interface {
	Wallet(ctx context.Context) (*api.Wallet, error)
	WalletTransactions(ctx context.Context) ([]api.WalletTransaction, error)
	Notifications(ctx context.Context) ([]api.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) error
	SupportTickets(ctx context.Context) ([]api.SupportTicket, error)
	CreateSupportTicket(ctx context.Context, subject, message string) (*api.SupportTicket, error)
}

type AccountHandler struct {
	account  AccountAPI
	sessions *session.Store
	timeout  time.Duration
}

func NewAccountHandler(account AccountAPI, sessions *session.Store, timeout time.Duration) *AccountHandler {
	return &AccountHandler{
		account:  account,
		sessions: sessions,
		timeout:  timeout,
	}
}

type CreateTicketRequestDTO struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *AccountHandler) requireSession(w http.ResponseWriter) bool {
	if !h.sessions.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return false
	}
	return true
}

func (h *AccountHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	wallet, err := h.account.Wallet(ctx)
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, wallet)
}

func (h *AccountHandler) WalletTransactions(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	transactions, err := h.account.WalletTransactions(ctx)
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]api.WalletTransaction{"transactions": transactions})
}

func (h *AccountHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	notifications, err := h.account.Notifications(ctx)
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]api.Notification{"notifications": notifications})
}

func (h *AccountHandler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.account.MarkAllNotificationsRead(ctx); err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AccountHandler) SupportTickets(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	tickets, err := h.account.SupportTickets(ctx)
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]api.SupportTicket{"tickets": tickets})
}

func (h *AccountHandler) CreateSupportTicket(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CreateTicketRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Subject == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "subject and message are required")
		return
	}

	ticket, err := h.account.CreateSupportTicket(ctx, req.Subject, req.Message)
	if err != nil {
		respondUpstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, ticket)
}
