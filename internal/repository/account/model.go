package account

import "time"

type ManufacturerDB struct {
	ID           int64
	CompanyName  string
	OwnerName    string
	Username     string
	Email        string
	Phone        string
	City         string
	State        string
	PasswordHash string
	Products     []ProductDB
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductDB lives inside the manufacturers.products jsonb column, so the
// json tags define the stored shape.
type ProductDB struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	Department      string    `json:"department"`
	District        string    `json:"district"`
	State           string    `json:"state"`
	ManufactureDate string    `json:"manufacture_date"`
	ImageURL        string    `json:"image_url"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BuyerDB struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}
