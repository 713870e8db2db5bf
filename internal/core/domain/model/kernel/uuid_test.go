package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.False(t, id1.IsEqual(id2))
	assert.NotEqual(t, uuid.Nil.String(), id1.String())
}

func TestUUIDFromString(t *testing.T) {
	const valid = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", valid, false},
		{"braced", "{" + valid + "}", false},
		{"urn", "urn:uuid:" + valid, false},
		{"garbage", "not-a-uuid", true},
		{"empty", "", true},
		{"nil uuid", uuid.Nil.String(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, valid, id.String())
		})
	}
}

func TestUUIDFrom(t *testing.T) {
	raw := uuid.New()

	id, err := kernel.UUIDFrom(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.Raw())

	_, err = kernel.UUIDFrom(uuid.Nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_ZeroValueIsInvalid(t *testing.T) {
	var id kernel.UUID
	require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
}
