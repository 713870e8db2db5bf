package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingInvoiceDetector_FindMissing(t *testing.T) {
	detector := services.NewMissingInvoiceDetector()

	tests := []struct {
		name   string
		start  string
		end    string
		issued []string
		want   []string
	}{
		{
			name:   "gaps in the middle",
			start:  "SA000001",
			end:    "SA000005",
			issued: []string{"SA000001", "SA000003", "SA000005"},
			want:   []string{"SA000002", "SA000004"},
		},
		{
			name:   "single number present",
			start:  "SA000001",
			end:    "SA000001",
			issued: []string{"SA000001"},
			want:   []string{},
		},
		{
			name:   "nothing issued",
			start:  "SA000010",
			end:    "SA000012",
			issued: nil,
			want:   []string{"SA000010", "SA000011", "SA000012"},
		},
		{
			name:   "loose input",
			start:  "sa 98",
			end:    "SA0100",
			issued: []string{"SA000099", "garbage"},
			want:   []string{"SA000098", "SA000100"},
		},
		{
			name:   "issued outside the range ignored",
			start:  "SA000002",
			end:    "SA000003",
			issued: []string{"SA000001", "SA000002", "SA000004"},
			want:   []string{"SA000003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detector.FindMissing(tt.start, tt.end, tt.issued)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissingInvoiceDetector_RangeInvalid(t *testing.T) {
	detector := services.NewMissingInvoiceDetector()

	for name, r := range map[string][2]string{
		"inverted":  {"SA000005", "SA000001"},
		"no digits": {"SA", "SA000001"},
		"empty end": {"SA000001", ""},
		"too wide":  {"SA000000", "SA9999999"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := detector.FindMissing(r[0], r[1], nil)
			require.ErrorIs(t, err, errs.ErrRangeInvalid)
		})
	}
}

func TestMissingInvoiceDetector_Idempotent(t *testing.T) {
	detector := services.NewMissingInvoiceDetector()
	issued := []string{"SA000001", "SA000004"}

	first, err := detector.FindMissing("SA000001", "SA000006", issued)
	require.NoError(t, err)
	second, err := detector.FindMissing("SA000001", "SA000006", issued)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"SA000001", "SA000004"}, issued)
}
