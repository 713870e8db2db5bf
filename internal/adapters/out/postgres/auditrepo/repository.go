// Package auditrepo appends audit events for privileged invoice actions.
package auditrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditDTO is the invoice_audit table row.
type AuditDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	InvoiceID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Action    string         `gorm:"type:varchar(32);not null"`
	Actor     string         `gorm:"not null"`
	Details   datatypes.JSON `gorm:"type:jsonb"`
	At        time.Time      `gorm:"not null"`
}

func (AuditDTO) TableName() string {
	return "invoice_audit"
}

// GormAuditLog implements ports.AuditLog using GORM.
type GormAuditLog struct {
	db *gorm.DB
}

func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Append stores event with its details marshalled to JSON.
func (r *GormAuditLog) Append(ctx context.Context, event ports.AuditEvent) error {
	if err := event.ID.Validate(); err != nil {
		return err
	}
	if err := event.InvoiceID.Validate(); err != nil {
		return err
	}

	var details datatypes.JSON
	if event.Details != nil {
		raw, err := json.Marshal(event.Details)
		if err != nil {
			return fmt.Errorf("marshal audit details: %w", err)
		}
		details = datatypes.JSON(raw)
	}

	dto := AuditDTO{
		ID:        event.ID.Raw(),
		InvoiceID: event.InvoiceID.Raw(),
		Action:    event.Action,
		Actor:     event.Actor,
		Details:   details,
		At:        event.At,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}
