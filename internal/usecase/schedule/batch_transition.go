package schedule

import (
	"context"

	"github.com/louk-2005/AppointmentSite/internal/audit"
	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BatchTransitionInput struct {
	Principal domain.Principal
	SalonID   uint

	FromStatus domain.Status
	Action     TransitionAction
}

type BatchTransitionResult struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// ======================================================
// USE CASE
// ======================================================

// BatchTransition applies the same status transition to every salon
// appointment currently in FromStatus. Failures are per record: one
// bad row does not roll back the rest.
type BatchTransition struct {
	repo       domain.Repository
	transition *TransitionAppointment
}

func NewBatchTransition(
	repo domain.Repository,
	audit *audit.Dispatcher,
	transition *TransitionAppointment,
) *BatchTransition {
	return &BatchTransition{
		repo:       repo,
		transition: transition,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BatchTransition) Execute(
	ctx context.Context,
	in BatchTransitionInput,
) (BatchTransitionResult, error) {

	var result BatchTransitionResult

	salon, err := uc.repo.GetSalonForManager(ctx, in.SalonID, in.Principal.UserID)
	if err != nil {
		return result, err
	}

	switch in.Action {
	case ActionConfirm, ActionCancel, ActionComplete:
	default:
		return result, httperr.Validation("invalid_action", "action", "unknown transition")
	}

	apps, err := uc.repo.ListAppointments(ctx, domain.AppointmentFilter{
		SalonID: &salon.ID,
		Status:  &in.FromStatus,
	})
	if err != nil {
		return result, err
	}

	for i := range apps {
		if _, err := uc.transition.execute(
			ctx, in.Principal, apps[i].ID, in.Action,
		); err != nil {
			result.Failed++
			continue
		}
		result.Processed++
	}

	return result, nil
}
