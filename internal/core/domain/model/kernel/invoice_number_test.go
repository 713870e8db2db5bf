package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"canonical", "SA000123", "SA000123", nil},
		{"lower case and padded", "  sa000123 ", "SA000123", nil},
		{"empty", "", "", errs.ErrValueIsRequired},
		{"six digits", "SA0001234", "", errs.ErrValueIsInvalid},
		{"missing zero", "SA123456", "", errs.ErrValueIsInvalid},
		{"four digits", "SA01234", "", errs.ErrValueIsInvalid},
		{"wrong prefix", "SB000123", "", errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := kernel.NewInvoiceNumber(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, n.Validate())
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestInvoiceNumber_Sequence(t *testing.T) {
	assert.Equal(t, 123, kernel.MustInvoiceNumber("SA000123").Sequence())
}

func TestInvoiceNumber_ZeroValue(t *testing.T) {
	var n kernel.InvoiceNumber
	require.ErrorIs(t, n.Validate(), kernel.ErrInvoiceNumberIsNotConstructed)
}

func TestParseInvoiceSequence(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"SA000001", 1, false},
		{"SA123456", 123456, false},
		{"sa-00042", 42, false},
		{"42", 42, false},
		{"SA", 0, true},
		{"", 0, true},
		{"SA99999999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := kernel.ParseInvoiceSequence(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "SA000002", kernel.FormatInvoiceNumber(2))
	assert.Equal(t, "SA099999", kernel.FormatInvoiceNumber(99999))
	assert.Equal(t, "SA0123456", kernel.FormatInvoiceNumber(123456))
}
