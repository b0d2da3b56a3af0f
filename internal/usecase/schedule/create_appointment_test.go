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

func TestCreateAppointmentBooksSlot(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 2)

	uc := NewCreateAppointment(f.repo, nil, nil)
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: slot.ID,
		Notes:      "first visit",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, f.customer.ID, ap.CustomerID)
	assert.Equal(t, 1, f.reloadSlot(t, slot.ID).BookedCount)
}

func TestCreateAppointmentFullSlot(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 1)

	uc := NewCreateAppointment(f.repo, nil, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: slot.ID,
	})
	require.NoError(t, err)

	other := f.newUser(t, "CUSTOMER")
	_, err = uc.Execute(ctx, CreateAppointmentInput{
		Principal:  domain.Principal{UserID: other.ID, Role: other.Role},
		TimeSlotID: slot.ID,
	})
	assert.True(t, httperr.Is(err, "slot_unavailable"))
	assert.Equal(t, 1, f.reloadSlot(t, slot.ID).BookedCount)
}

func TestConcurrentBookingsRespectCapacity(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 1)

	other := f.newUser(t, models.RoleCustomer)
	principals := []domain.Principal{
		f.asCustomer(),
		{UserID: other.ID, Role: models.RoleCustomer},
	}

	uc := NewCreateAppointment(f.repo, nil, nil)
	errs := make(chan error, len(principals))
	for _, p := range principals {
		go func(p domain.Principal) {
			_, err := uc.Execute(context.Background(), CreateAppointmentInput{
				Principal:  p,
				TimeSlotID: slot.ID,
			})
			errs <- err
		}(p)
	}

	var booked, rejected int
	for range principals {
		err := <-errs
		switch {
		case err == nil:
			booked++
		case httperr.Is(err, "slot_unavailable"):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, booked)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, f.reloadSlot(t, slot.ID).BookedCount)
}

func TestCreateAppointmentBlockedSlot(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 2)

	require.NoError(t, NewBlockSlot(f.repo, nil, nil).
		Execute(context.Background(), f.asManager(), slot.ID, "holiday"))

	uc := NewCreateAppointment(f.repo, nil, nil)
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: slot.ID,
	})
	assert.True(t, httperr.Is(err, "slot_unavailable"))
}

func TestCreateAppointmentOnePerDate(t *testing.T) {
	f := newFixture(t)
	first := f.seedSlot(t, testDate(0), "10:00", "11:00", 2)
	sameDay := f.seedSlot(t, testDate(0), "11:00", "12:00", 2)
	nextDay := f.seedSlot(t, testDate(1), "10:00", "11:00", 2)

	uc := NewCreateAppointment(f.repo, nil, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: first.ID,
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: sameDay.ID,
	})
	assert.True(t, httperr.Is(err, "duplicate_booking_for_date"))

	// A different date is fine.
	_, err = uc.Execute(ctx, CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: nextDay.ID,
	})
	assert.NoError(t, err)
}

func TestCancelReleasesCapacityAndDate(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 1)

	createUC := NewCreateAppointment(f.repo, nil, nil)
	transitionUC := NewTransitionAppointment(f.repo, nil, nil)
	ctx := context.Background()

	ap, err := createUC.Execute(ctx, CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: slot.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 1, f.reloadSlot(t, slot.ID).BookedCount)

	cancelled, err := transitionUC.Cancel(ctx, f.asCustomer(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.Equal(t, 0, f.reloadSlot(t, slot.ID).BookedCount)

	// The cancelled booking no longer holds the customer's date.
	_, err = createUC.Execute(ctx, CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: slot.ID,
	})
	assert.NoError(t, err)
}

func TestCustomerTransitionsAreRestricted(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 2)

	createUC := NewCreateAppointment(f.repo, nil, nil)
	transitionUC := NewTransitionAppointment(f.repo, nil, nil)
	ctx := context.Background()

	ap, err := createUC.Execute(ctx, CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: slot.ID,
	})
	require.NoError(t, err)

	_, err = transitionUC.Confirm(ctx, f.asCustomer(), ap.ID)
	assert.True(t, httperr.Is(err, "action_not_allowed"))

	// Another customer cannot even see the booking.
	other := f.newUser(t, "CUSTOMER")
	_, err = transitionUC.Cancel(ctx, domain.Principal{UserID: other.ID, Role: other.Role}, ap.ID)
	assert.True(t, httperr.Is(err, "appointment_not_found"))
}

func TestAppointmentLifecycle(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 2)

	createUC := NewCreateAppointment(f.repo, nil, nil)
	transitionUC := NewTransitionAppointment(f.repo, nil, nil)
	ctx := context.Background()

	ap, err := createUC.Execute(ctx, CreateAppointmentInput{
		Principal:  f.asCustomer(),
		TimeSlotID: slot.ID,
	})
	require.NoError(t, err)

	confirmed, err := transitionUC.Confirm(ctx, f.asManager(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), confirmed.Status)

	completed, err := transitionUC.Complete(ctx, f.asManager(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), completed.Status)

	// Terminal states admit no further transitions.
	_, err = transitionUC.Cancel(ctx, f.asManager(), ap.ID)
	assert.True(t, httperr.Is(err, "invalid_status_transition"))

	// Completion never touched the booking counter.
	assert.Equal(t, 1, f.reloadSlot(t, slot.ID).BookedCount)
}

func TestBatchTransitionConfirmsPending(t *testing.T) {
	f := newFixture(t)
	slot := f.seedSlot(t, testDate(0), "10:00", "11:00", 3)

	createUC := NewCreateAppointment(f.repo, nil, nil)
	transitionUC := NewTransitionAppointment(f.repo, nil, nil)
	batchUC := NewBatchTransition(f.repo, nil, transitionUC)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		customer := f.newUser(t, "CUSTOMER")
		_, err := createUC.Execute(ctx, CreateAppointmentInput{
			Principal:  domain.Principal{UserID: customer.ID, Role: customer.Role},
			TimeSlotID: slot.ID,
		})
		require.NoError(t, err)
	}

	result, err := batchUC.Execute(ctx, BatchTransitionInput{
		Principal:  f.asManager(),
		SalonID:    f.salon.ID,
		FromStatus: domain.StatusPending,
		Action:     ActionConfirm,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Failed)

	apps, err := f.repo.ListAppointments(ctx, domain.AppointmentFilter{
		SalonID: &f.salon.ID,
	})
	require.NoError(t, err)
	require.Len(t, apps, 2)
	for _, ap := range apps {
		assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	}
}

func TestBatchTransitionRejectsUnknownAction(t *testing.T) {
	f := newFixture(t)

	transitionUC := NewTransitionAppointment(f.repo, nil, nil)
	batchUC := NewBatchTransition(f.repo, nil, transitionUC)

	_, err := batchUC.Execute(context.Background(), BatchTransitionInput{
		Principal:  f.asManager(),
		SalonID:    f.salon.ID,
		FromStatus: domain.StatusPending,
		Action:     TransitionAction("archive"),
	})
	assert.True(t, httperr.Is(err, "invalid_action"))
}
