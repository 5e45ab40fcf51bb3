package domain

import "strings"

// Role determines which storefront operations a user may perform.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

// BusinessInfo is the vendor profile attached to vendor accounts.
type BusinessInfo struct {
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
	Description  string `json:"description,omitempty"`
}

// User is the authenticated principal returned by the marketplace API.
type User struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone,omitempty"`
	Role         Role          `json:"role"`
	BusinessInfo *BusinessInfo `json:"businessInfo,omitempty"`
}

// Registration is the payload for a new account. Validation runs locally
// before any network call.
type Registration struct {
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Password        string        `json:"password"`
	ConfirmPassword string        `json:"-"`
	Phone           string        `json:"phone,omitempty"`
	Role            Role          `json:"role"`
	BusinessInfo    *BusinessInfo `json:"businessInfo,omitempty"`
}

const minPasswordLength = 6

// Validate checks the registration form the same way the server will,
// so obviously bad submissions never reach the network.
func (r *Registration) Validate() error {
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(r.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if r.Role == RoleVendor {
		if r.BusinessInfo == nil || strings.TrimSpace(r.BusinessInfo.BusinessName) == "" {
			return ErrBusinessNameRequired
		}
		if strings.TrimSpace(r.BusinessInfo.BusinessType) == "" {
			return ErrBusinessTypeRequired
		}
	}
	return nil
}
