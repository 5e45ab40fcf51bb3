package api

import (
	"context"
	"net/http"
	"time"
)

// Wallet is the customer's store-credit balance.
type Wallet struct {
	Balance float64 `json:"balance"`
}

// WalletTransaction is one credit or debit against the wallet.
type WalletTransaction struct {
	ID          string    `json:"_id"`
	Type        string    `json:"type"` // "credit" or "debit"
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Notification is a storefront notification for the current user.
type Notification struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// SupportTicket is a customer support request.
type SupportTicket struct {
	ID        string    `json:"_id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Client) Wallet(ctx context.Context) (*Wallet, error) {
	var wallet Wallet
	if err := c.do(ctx, http.MethodGet, "/api/users/wallet", nil, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (c *Client) WalletTransactions(ctx context.Context) ([]WalletTransaction, error) {
	var resp struct {
		Transactions []WalletTransaction `json:"transactions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/wallet/transactions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var resp struct {
		Notifications []Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/notifications", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/api/users/notifications/mark-all-read", nil, nil)
}

func (c *Client) SupportTickets(ctx context.Context) ([]SupportTicket, error) {
	var resp struct {
		Tickets []SupportTicket `json:"tickets"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/support/tickets", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tickets, nil
}

func (c *Client) CreateSupportTicket(ctx context.Context, subject, message string) (*SupportTicket, error) {
	req := struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	}{Subject: subject, Message: message}

	var resp struct {
		Ticket SupportTicket `json:"ticket"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/support/tickets", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Ticket, nil
}
