package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
)

// CustomerRepository persists customers. Names are unique case-insensitively;
// Add and Update report a clash as a ValueIsInvalid error for customer_name.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
