package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// StaffDirectory resolves usernames to actors. An unknown username is a
// NotAuthorized error: nobody outside the directory may act on invoices.
type StaffDirectory interface {
	Resolve(ctx context.Context, username string) (kernel.Actor, error)
	Upsert(ctx context.Context, actor kernel.Actor) error
}
