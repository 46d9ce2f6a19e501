package dto

import "marketplace/internal/entities"

func OrderFromEntity(o *entities.Order) Order {
	return Order{
		ID:                  o.ID,
		BuyerID:             o.BuyerID,
		BuyerName:           o.BuyerName,
		BuyerPhone:          o.BuyerPhone,
		ManufacturerID:      o.ManufacturerID,
		ManufacturerCompany: o.ManufacturerCompany,
		ManufacturerPhone:   o.ManufacturerPhone,
		ProductName:         o.ProductName,
		Price:               o.Price,
		Quantity:            o.Quantity,
		Total:               o.Total,
		Category:            o.Category,
		District:            o.District,
		State:               o.State,
		ManufactureDate:     o.ManufactureDate,
		Status:              o.Status.String(),
		OrderDate:           o.OrderDate,
		StatusUpdatedAt:     o.StatusUpdatedAt,
	}
}

func OrdersFromEntities(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for i := range orders {
		result = append(result, OrderFromEntity(&orders[i]))
	}
	return result
}

func ManufacturerFromEntity(m *entities.Manufacturer) Manufacturer {
	return Manufacturer{
		ID:          m.ID,
		CompanyName: m.CompanyName,
		OwnerName:   m.OwnerName,
		Username:    m.Username,
		Email:       m.Email,
		Phone:       m.Phone,
		City:        m.City,
		State:       m.State,
		Products:    ProductsFromEntities(m.Products),
	}
}

func ManufacturersFromEntities(manufacturers []entities.Manufacturer) []Manufacturer {
	result := make([]Manufacturer, 0, len(manufacturers))
	for i := range manufacturers {
		result = append(result, ManufacturerFromEntity(&manufacturers[i]))
	}
	return result
}

func ProductsFromEntities(products []entities.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, Product{
			Name:            p.Name,
			Description:     p.Description,
			Price:           p.Price,
			Category:        p.Category,
			Department:      p.Department,
			District:        p.District,
			State:           p.State,
			ManufactureDate: p.ManufactureDate,
			ImageURL:        p.ImageURL,
		})
	}
	return result
}

func ProductsToEntities(products []Product) []entities.Product {
	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, entities.Product{
			Name:            p.Name,
			Description:     p.Description,
			Price:           p.Price,
			Category:        p.Category,
			Department:      p.Department,
			District:        p.District,
			State:           p.State,
			ManufactureDate: p.ManufactureDate,
			ImageURL:        p.ImageURL,
		})
	}
	return result
}
