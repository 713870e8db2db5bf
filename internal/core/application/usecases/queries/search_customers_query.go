package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSearchCustomersQueryIsNotConstructed = errors.New(
	"SearchCustomersQuery must be created via NewSearchCustomersQuery constructor",
)

const (
	defaultCustomerSearchLimit = 20
	maxCustomerSearchLimit     = 100
)

// SearchCustomersQuery finds customers by name prefix, ignoring case.
type SearchCustomersQuery struct {
	prefix string
	limit  int
	guard  guard.ConstructorGuard
}

// NewSearchCustomersQuery clamps limit to [1, 100]; zero or less means 20.
func NewSearchCustomersQuery(prefix string, limit int) SearchCustomersQuery {
	switch {
	case limit <= 0:
		limit = defaultCustomerSearchLimit
	case limit > maxCustomerSearchLimit:
		limit = maxCustomerSearchLimit
	}
	return SearchCustomersQuery{prefix: prefix, limit: limit, guard: guard.NewConstructorGuard()}
}

func (q SearchCustomersQuery) Validate() error {
	return q.guard.Validate(ErrSearchCustomersQueryIsNotConstructed)
}

func (q SearchCustomersQuery) Prefix() string { return q.prefix }
func (q SearchCustomersQuery) Limit() int     { return q.limit }

// CustomerView is the read model of a customer.
type CustomerView struct {
	ID      kernel.UUID
	Name    string
	City    string
	RepName string
	Courier kernel.Courier
}
