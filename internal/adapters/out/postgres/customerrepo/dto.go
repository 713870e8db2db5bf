// Package customerrepo persists the customer master list.
package customerrepo

import (
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the customers table row. normalized_name backs the
// case-insensitive uniqueness of names and the prefix search.
type CustomerDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName   string    `gorm:"not null"`
	NormalizedName string    `gorm:"not null;uniqueIndex"`
	City           string
	RepName        string
	CourierName    string `gorm:"type:varchar(32);not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:             c.ID().Raw(),
		CustomerName:   c.Name(),
		NormalizedName: c.NormalizedName(),
		City:           c.City(),
		RepName:        c.RepName(),
		CourierName:    c.Courier().String(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	courier, err := kernel.ParseCourier(dto.CourierName)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.CustomerName, dto.City, dto.RepName, courier)
}
