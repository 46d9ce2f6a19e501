package account

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidPassword       = errors.New("password is too short")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrConflict              = errors.New("account already exists")
	ErrManufacturerNotFound  = errors.New("manufacturer not found")
	ErrBuyerNotFound         = errors.New("buyer not found")
	ErrInvalidPrice          = errors.New("product price must not be negative")
	ErrEmptyProductName      = errors.New("product name must not be empty")
	ErrDuplicateProductName  = errors.New("duplicate product name in catalog")
)
