package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorConstructors(t *testing.T) {
	err := Validation("invalid_slot_window", "end_time", "end before start")
	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, "end_time", appErr.Field)

	err = Conflict("capacity_exceeded", "full")
	appErr, ok = As(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, appErr.Kind)

	err = ErrNotFound("salon_not_found", "missing")
	appErr, ok = As(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
}

func TestIs(t *testing.T) {
	err := Conflict("duplicate_record", "exists")

	assert.True(t, Is(err, "duplicate_record"))
	assert.False(t, Is(err, "other_code"))
	assert.False(t, Is(errors.New("plain"), "duplicate_record"))
	assert.False(t, Is(nil, "duplicate_record"))

	// Codes survive wrapping.
	wrapped := fmt.Errorf("booking: %w", err)
	assert.True(t, Is(wrapped, "duplicate_record"))
}
