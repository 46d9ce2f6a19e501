// Package dto holds the request and response bodies of the REST surface.
// Wire names are snake_case and stable, entities never cross the HTTP
// boundary directly.
package dto

import "time"

type ManufacturerRegister struct {
	CompanyName string `json:"company_name"`
	OwnerName   string `json:"owner_name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Password    string `json:"password"`
}

type BuyerRegister struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID int64 `json:"id"`
}

// Login accepts a username or an email in the login field.
type Login struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Product struct {
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Category        string  `json:"category,omitempty"`
	Department      string  `json:"department,omitempty"`
	District        string  `json:"district,omitempty"`
	State           string  `json:"state,omitempty"`
	ManufactureDate string  `json:"manufacture_date,omitempty"`
	ImageURL        string  `json:"image_url,omitempty"`
}

type Manufacturer struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"company_name"`
	OwnerName   string    `json:"owner_name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Products    []Product `json:"products"`
}

type CatalogUpdate struct {
	Products []Product `json:"products"`
}

type CatalogResponse struct {
	Products []Product `json:"products"`
}

type OrderCreate struct {
	ManufacturerID int64  `json:"manufacturer_id"`
	ProductName    string `json:"product_name"`
	Quantity       int    `json:"quantity"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

// InvalidTransitionResponse reports a rejected status change together
// with the transitions the order currently accepts, so the client can
// recover without another read.
type InvalidTransitionResponse struct {
	Error   string   `json:"error"`
	Allowed []string `json:"allowed"`
}

type Order struct {
	ID string `json:"id"`

	BuyerID    int64  `json:"buyer_id"`
	BuyerName  string `json:"buyer_name"`
	BuyerPhone string `json:"buyer_phone"`

	ManufacturerID      int64  `json:"manufacturer_id"`
	ManufacturerCompany string `json:"manufacturer_company"`
	ManufacturerPhone   string `json:"manufacturer_phone"`

	ProductName     string  `json:"product_name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	Total           float64 `json:"total"`
	Category        string  `json:"category,omitempty"`
	District        string  `json:"district,omitempty"`
	State           string  `json:"state,omitempty"`
	ManufactureDate string  `json:"manufacture_date,omitempty"`

	Status          string    `json:"status"`
	OrderDate       time.Time `json:"order_date"`
	StatusUpdatedAt time.Time `json:"status_updated_at"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
