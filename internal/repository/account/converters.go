package account

import "marketplace/internal/entities"

func ToManufacturerDomain(m *ManufacturerDB) *entities.Manufacturer {
	if m == nil {
		return nil
	}
	return &entities.Manufacturer{
		ID:           m.ID,
		CompanyName:  m.CompanyName,
		OwnerName:    m.OwnerName,
		Username:     m.Username,
		Email:        m.Email,
		Phone:        m.Phone,
		City:         m.City,
		State:        m.State,
		PasswordHash: m.PasswordHash,
		Products:     ToProductDomainList(m.Products),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToManufacturerDomainList(models []ManufacturerDB) []entities.Manufacturer {
	result := make([]entities.Manufacturer, 0, len(models))
	for i := range models {
		result = append(result, *ToManufacturerDomain(&models[i]))
	}
	return result
}

func ToProductDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}
	return &entities.Product{
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Category:        p.Category,
		Department:      p.Department,
		District:        p.District,
		State:           p.State,
		ManufactureDate: p.ManufactureDate,
		ImageURL:        p.ImageURL,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToProductDomainList(models []ProductDB) []entities.Product {
	result := make([]entities.Product, 0, len(models))
	for i := range models {
		result = append(result, *ToProductDomain(&models[i]))
	}
	return result
}

func FromProductDomainList(products []entities.Product) []ProductDB {
	result := make([]ProductDB, 0, len(products))
	for _, p := range products {
		result = append(result, ProductDB{
			Name:            p.Name,
			Description:     p.Description,
			Price:           p.Price,
			Category:        p.Category,
			Department:      p.Department,
			District:        p.District,
			State:           p.State,
			ManufactureDate: p.ManufactureDate,
			ImageURL:        p.ImageURL,
			UpdatedAt:       p.UpdatedAt,
		})
	}
	return result
}

func ToBuyerDomain(b *BuyerDB) *entities.Buyer {
	if b == nil {
		return nil
	}
	return &entities.Buyer{
		ID:           b.ID,
		Name:         b.Name,
		Username:     b.Username,
		Email:        b.Email,
		Phone:        b.Phone,
		PasswordHash: b.PasswordHash,
		CreatedAt:    b.CreatedAt,
	}
}
