// Package invoicerepo persists invoice aggregates. Status is stored as its
// canonical name; legacy names are accepted when reading old rows.
package invoicerepo

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/pgdate"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO is the invoices table row.
type InvoiceDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNumber    string    `gorm:"type:varchar(16);uniqueIndex;not null"`
	InvoiceDate      time.Time `gorm:"type:date;index;not null"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerName     string    `gorm:"not null"`
	RepName          string
	CourierName      string           `gorm:"type:varchar(32);not null"`
	NoOfProducts     int              `gorm:"not null"`
	InvoiceValue     *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status           string           `gorm:"type:varchar(32);index;not null"`
	CreatedBy        string           `gorm:"not null"`
	CreatedAt        time.Time        `gorm:"not null"`
	TakenBy          *string          `gorm:"index"`
	TakeStartedAt    *time.Time
	TakeCompletedAt  *time.Time
	PackedBy         *string `gorm:"index"`
	VerifyStartedAt  *time.Time
	PackCompletedAt  *time.Time `gorm:"index"`
	VerifyOverridden bool       `gorm:"not null;default:false"`
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:               inv.ID().Raw(),
		InvoiceNumber:    inv.Number().String(),
		InvoiceDate:      pgdate.ToColumn(inv.InvoiceDate()),
		CustomerID:       inv.Customer().ID.Raw(),
		CustomerName:     inv.Customer().Name,
		RepName:          inv.RepName(),
		CourierName:      inv.Courier().String(),
		NoOfProducts:     inv.NoOfProducts(),
		InvoiceValue:     inv.Value(),
		Status:           inv.Status().String(),
		CreatedBy:        inv.CreatedBy(),
		CreatedAt:        inv.CreatedAt(),
		TakenBy:          nullable(inv.TakenBy()),
		TakeStartedAt:    inv.TakeStartedAt(),
		TakeCompletedAt:  inv.TakeCompletedAt(),
		PackedBy:         nullable(inv.PackedBy()),
		VerifyStartedAt:  inv.VerifyStartedAt(),
		PackCompletedAt:  inv.PackCompletedAt(),
		VerifyOverridden: inv.VerifyOverridden(),
	}
}

func toDomain(dto InvoiceDTO, loc *time.Location) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFrom(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	number, err := kernel.NewInvoiceNumber(dto.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	courier, err := kernel.ParseCourier(dto.CourierName)
	if err != nil {
		return nil, err
	}
	status, err := invoice.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(invoice.Snapshot{
		ID:               id,
		Number:           number,
		InvoiceDate:      pgdate.FromColumn(dto.InvoiceDate, loc),
		Customer:         invoice.CustomerRef{ID: customerID, Name: dto.CustomerName},
		RepName:          dto.RepName,
		Courier:          courier,
		NoOfProducts:     dto.NoOfProducts,
		Value:            dto.InvoiceValue,
		Status:           status,
		CreatedBy:        dto.CreatedBy,
		CreatedAt:        dto.CreatedAt,
		TakenBy:          deref(dto.TakenBy),
		TakeStartedAt:    dto.TakeStartedAt,
		TakeCompletedAt:  dto.TakeCompletedAt,
		PackedBy:         deref(dto.PackedBy),
		VerifyStartedAt:  dto.VerifyStartedAt,
		PackCompletedAt:  dto.PackCompletedAt,
		VerifyOverridden: dto.VerifyOverridden,
	})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
