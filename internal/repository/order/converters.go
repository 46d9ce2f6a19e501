package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
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
		Status:              entities.OrderStatusType(o.Status),
		OrderDate:           o.OrderDate,
		CreatedAt:           o.CreatedAt,
		StatusUpdatedAt:     o.StatusUpdatedAt,
	}
}

func ToDomainList(models []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}
