package handler

import "github.com/shop-platform/client-service/internal/core/domain"

func (r clientRequest) toDomain() *domain.Client {
	roles := make([]domain.Role, 0, len(r.Roles))
	for _, name := range r.Roles {
		roles = append(roles, domain.Role(name))
	}

	nonLocked := true
	if r.AccountNonLocked != nil {
		nonLocked = *r.AccountNonLocked
	}

	return &domain.Client{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Patronymic:       r.Patronymic,
		Login:            r.Login,
		Password:         r.Password,
		Email:            r.Email,
		Roles:            roles,
		ConfirmationCode: r.ConfirmationCode,
		AccountNonLocked: nonLocked,
	}
}

func (r itemRequest) toDomain() domain.Item {
	return domain.Item{
		ID:              r.ID,
		Name:            r.Name,
		Count:           r.Count,
		Weight:          r.Weight,
		Price:           r.Price,
		Description:     r.Description,
		Characteristics: r.Characteristics,
		Image:           r.Image,
		Code:            r.Code,
		Category:        domain.Category{ID: r.Category.ID, Name: r.Category.Name},
	}
}

func (r clientItemRequest) toDomain() domain.ClientItem {
	return domain.ClientItem{
		ID:       r.ID,
		Item:     r.Item.toDomain(),
		Quantity: r.Quantity,
	}
}

func (r orderRequest) toDomain() *domain.Order {
	lines := make([]domain.ClientItem, 0, len(r.ClientItems))
	for _, line := range r.ClientItems {
		lines = append(lines, line.toDomain())
	}

	return &domain.Order{
		ClientItems: lines,
		Contacts: domain.Contacts{
			ZipCode:     r.Contacts.ZipCode,
			Country:     r.Contacts.Country,
			City:        r.Contacts.City,
			Street:      r.Contacts.Street,
			PhoneNumber: r.Contacts.PhoneNumber,
		},
		PaymentMethod: r.PaymentMethod,
		TrackNumber:   r.TrackNumber,
		OrderStatus:   domain.OrderStatus(r.OrderStatus),
	}
}
