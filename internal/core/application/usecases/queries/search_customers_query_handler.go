package queries

import (
	"context"
	"strings"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type SearchCustomersQueryHandler struct {
	db *gorm.DB
}

func NewSearchCustomersQueryHandler(db *gorm.DB) SearchCustomersQueryHandler {
	return SearchCustomersQueryHandler{db: db}
}

// Handle returns matches ordered by name.
func (h SearchCustomersQueryHandler) Handle(
	ctx context.Context,
	query SearchCustomersQuery,
) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := likeEscaper.Replace(customer.NormalizeName(query.Prefix())) + "%"
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_name, coalesce(city, ''), coalesce(rep_name, ''), courier_name
		FROM customers
		WHERE normalized_name LIKE ?
		ORDER BY normalized_name
		LIMIT ?
	`, pattern, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerView, 0)
	for rows.Next() {
		var (
			c       CustomerView
			id      uuid.UUID
			courier string
		)
		if err = rows.Scan(&id, &c.Name, &c.City, &c.RepName, &courier); err != nil {
			return nil, err
		}
		if c.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if c.Courier, err = kernel.ParseCourier(courier); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}
