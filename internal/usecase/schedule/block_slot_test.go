package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/models"
)

func TestBlockSlotAndUnblockSlot(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 2)

	blockUC := NewBlockSlot(f.repo, nil, nil)
	unblockUC := NewUnblockSlot(f.repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, blockUC.Execute(ctx, f.asManager(), slot.ID, "walk-in only"))

	blocked := f.reloadSlot(t, slot.ID)
	assert.False(t, blocked.IsActive)
	require.Len(t, blocked.Blocks, 1)
	assert.Equal(t, "walk-in only", blocked.Blocks[0].Reason)

	err := blockUC.Execute(ctx, f.asManager(), slot.ID, "again")
	assert.True(t, httperr.Is(err, "slot_already_blocked"))

	require.NoError(t, unblockUC.Execute(ctx, f.asManager(), slot.ID))

	restored := f.reloadSlot(t, slot.ID)
	assert.True(t, restored.IsActive)
	assert.Empty(t, restored.Blocks)

	err = unblockUC.Execute(ctx, f.asManager(), slot.ID)
	assert.True(t, httperr.Is(err, "slot_not_blocked"))
}

func TestBlockSlotRejectsForeignManager(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 2)

	other := f.newUser(t, models.RoleManager)
	outsider := domain.Principal{UserID: other.ID, Role: models.RoleManager}

	blockUC := NewBlockSlot(f.repo, nil, nil)
	err := blockUC.Execute(context.Background(), outsider, slot.ID, "not yours")
	assert.True(t, httperr.Is(err, "salon_not_found"))

	untouched := f.reloadSlot(t, slot.ID)
	assert.True(t, untouched.IsActive)
	assert.Empty(t, untouched.Blocks)
}

func TestUnblockSlotRejectsForeignManager(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 2)

	blockUC := NewBlockSlot(f.repo, nil, nil)
	unblockUC := NewUnblockSlot(f.repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, blockUC.Execute(ctx, f.asManager(), slot.ID, "maintenance"))

	other := f.newUser(t, models.RoleManager)
	outsider := domain.Principal{UserID: other.ID, Role: models.RoleManager}

	err := unblockUC.Execute(ctx, outsider, slot.ID)
	assert.True(t, httperr.Is(err, "salon_not_found"))

	still := f.reloadSlot(t, slot.ID)
	assert.False(t, still.IsActive)
}

func TestBlockSlotUnknownSlot(t *testing.T) {
	f := newFixture(t)

	blockUC := NewBlockSlot(f.repo, nil, nil)
	err := blockUC.Execute(context.Background(), f.asManager(), 999, "")
	assert.True(t, httperr.Is(err, "time_slot_not_found"))
}
