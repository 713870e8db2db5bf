package postgres

import (
	"context"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/customerrepo"
	"fulfillment/internal/adapters/out/postgres/feedbackrepo"
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/staffrepo"
	"fulfillment/internal/core/domain/model/invoice"

	"gorm.io/gorm"
)

// Models lists every table the service owns.
func Models() []any {
	return []any{
		&invoicerepo.InvoiceDTO{},
		&feedbackrepo.FeedbackDTO{},
		&customerrepo.CustomerDTO{},
		&staffrepo.StaffDTO{},
		&auditrepo.AuditDTO{},
	}
}

// activeJobIndexes back the workload count: one partial index per owning
// status, keyed by the owner column of that status.
func activeJobIndexes() []string {
	return []string{
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS ix_invoices_taking_owner
			ON invoices (taken_by) WHERE status = '%s'`, invoice.Taking),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS ix_invoices_verifying_owner
			ON invoices (packed_by) WHERE status = '%s'`, invoice.Verifying),
	}
}

// Migrate creates or alters the schema, rewrites legacy status names to
// their canonical form and creates the active-job partial indexes. It is
// idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for legacy, status := range invoice.LegacyStatuses() {
			err := tx.Model(&invoicerepo.InvoiceDTO{}).
				Where("status = ?", legacy).
				Update("status", status.String()).Error
			if err != nil {
				return fmt.Errorf("rewrite legacy status %s: %w", legacy, err)
			}
		}
		for _, ddl := range activeJobIndexes() {
			if err := tx.Exec(ddl).Error; err != nil {
				return fmt.Errorf("create active job index: %w", err)
			}
		}
		return nil
	})
}
