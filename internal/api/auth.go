package api

import (
	"context"
	"net/http"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the payload of successful login and register calls.
type AuthResponse struct {
	User    domain.User `json:"user"`
	Token   string      `json:"token"`
	Message string      `json:"message"`
}

// UserResponse wraps operations that return the updated user.
type UserResponse struct {
	User    domain.User `json:"user"`
	Message string      `json:"message"`
}

// ProfileUpdate is a partial profile change, empty fields stay untouched.
type ProfileUpdate struct {
	Name         string               `json:"name,omitempty"`
	Phone        string               `json:"phone,omitempty"`
	BusinessInfo *domain.BusinessInfo `json:"businessInfo,omitempty"`
}

// PasswordChange carries the current and replacement passwords.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me validates the current bearer credential and returns its principal.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var resp struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*UserResponse, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile", update, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ChangePassword(ctx context.Context, change PasswordChange) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/change-password", change, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
