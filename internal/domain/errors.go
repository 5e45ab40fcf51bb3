package domain

import "errors"

var (
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters long")
	ErrBusinessNameRequired = errors.New("business name is required for vendors")
	ErrBusinessTypeRequired = errors.New("business type is required for vendors")

	ErrQuantityInvalid = errors.New("quantity must be at least 1")
	ErrItemNotInCart   = errors.New("item is not in the cart")

	ErrNotAuthenticated = errors.New("not authenticated")
)
