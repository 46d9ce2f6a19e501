package entities

import "time"

type Manufacturer struct {
	ID           int64
	CompanyName  string
	OwnerName    string
	Username     string
	Email        string
	Phone        string
	City         string
	State        string
	PasswordHash string
	Products     []Product
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product is a catalog entry owned by exactly one manufacturer. Entries
// have no identity of their own: the catalog is replaced wholesale on
// update, never patched per entry.
type Product struct {
	Name            string
	Description     string
	Price           float64
	Category        string
	Department      string
	District        string
	State           string
	ManufactureDate string
	ImageURL        string
	UpdatedAt       time.Time
}

type Buyer struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

type ManufacturerRegistration struct {
	CompanyName *string
	OwnerName   *string
	Username    *string
	Email       *string
	Phone       *string
	City        *string
	State       *string
	Password    *string
}

type BuyerRegistration struct {
	Name     *string
	Username *string
	Email    *string
	Phone    *string
	Password *string
}

// AuthToken is the result of a successful login.
type AuthToken struct {
	Token     string
	ExpiresAt time.Time
	Actor     Actor
}
