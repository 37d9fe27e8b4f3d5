// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. It implements the repository pattern for the
// customer aggregate, handling the conversion between domain entities and
// database representations.
package customerrepo

import (
	"time"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName        string
	Email           string `gorm:"uniqueIndex"`
	CompanyName     *string
	Phone           string
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2)"`
	RegisteredAt    time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(customer *catalog.Customer) CustomerDTO {
	return CustomerDTO{
		ID:              customer.ID().Bytes(),
		FullName:        customer.FullName(),
		Email:           customer.Email(),
		CompanyName:     customer.CompanyName(),
		Phone:           customer.Phone(),
		DiscountPercent: customer.DiscountPercent(),
		RegisteredAt:    customer.RegisteredAt(),
	}
}

func toDomain(dto CustomerDTO) (*catalog.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCustomer(
		id,
		dto.FullName,
		dto.Email,
		dto.CompanyName,
		dto.Phone,
		dto.DiscountPercent,
		dto.RegisteredAt,
	)
}
