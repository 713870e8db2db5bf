package pgerr_test

import (
	"errors"
	"testing"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, errs.ErrConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, errs.ErrConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errs.ErrValueIsInvalid},
		{"other", plain, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, pgerr.Map(tt.err, "invoice", "x", "invoice_number"), tt.target)
		})
	}
}

func TestMap_Nil(t *testing.T) {
	assert.NoError(t, pgerr.Map(nil, "invoice", "x", ""))
}

func TestMap_UniqueWithoutField_IsConflict(t *testing.T) {
	err := pgerr.Map(&pgconn.PgError{Code: "23505"}, "feedback", "x", "")
	assert.ErrorIs(t, err, errs.ErrConflict)
}
