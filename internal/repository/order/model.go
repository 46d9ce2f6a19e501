package order

import "time"

type OrderDB struct {
	ID string

	BuyerID    int64
	BuyerName  string
	BuyerPhone string

	ManufacturerID      int64
	ManufacturerCompany string
	ManufacturerPhone   string

	ProductName     string
	Price           float64
	Quantity        int
	Total           float64
	Category        string
	District        string
	State           string
	ManufactureDate string

	Status          string
	OrderDate       time.Time
	CreatedAt       time.Time
	StatusUpdatedAt time.Time
}
