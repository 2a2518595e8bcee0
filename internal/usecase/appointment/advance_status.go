package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nerobarber/booking-api/internal/audit"
	domain "github.com/nerobarber/booking-api/internal/domain/appointment"
	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/lock"
	"github.com/nerobarber/booking-api/internal/models"
	"github.com/nerobarber/booking-api/internal/timezone"
)

// ErrLoyaltyAward marks the partial-failure path: the status write
// committed but the points credit did not. Callers must surface it and
// must not treat the transition itself as failed.
var ErrLoyaltyAward = errors.New("loyalty_award_failed")

const transitionLockTTL = 10 * time.Second

// AdvanceStatus moves one appointment forward through
// pending → confirmed → completed and, on completion, credits the
// booking client's loyalty balance.
type AdvanceStatus struct {
	repo  domain.Repository
	locks lock.Locker
	audit audit.Recorder
}

func NewAdvanceStatus(
	repo domain.Repository,
	locks lock.Locker,
	recorder audit.Recorder,
) *AdvanceStatus {
	return &AdvanceStatus{
		repo:  repo,
		locks: locks,
		audit: recorder,
	}
}

func (uc *AdvanceStatus) Execute(
	ctx context.Context,
	barbershopID uint,
	actorID uuid.UUID,
	appointmentID uint,
	target domain.Status,
) (*models.Appointment, error) {

	key := fmt.Sprintf("appointment:%d", appointmentID)
	ok, err := uc.locks.Acquire(ctx, key, transitionLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("transition_in_progress")
	}
	defer uc.locks.Release(ctx, key)

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForShop(ctx, appointmentID, barbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	from := domain.Status(ap.Status)
	now := timezone.NowIn(shop.Timezone)
	if err := domain.Apply(ap, target, now); err != nil {
		return nil, err
	}

	// Primary effect. The compare-and-set on the previous status is the
	// last line of defense against a racing transition.
	if err := uc.repo.UpdateAppointmentStatus(ctx, ap.ID, from, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		ActorID:      &actorID,
		Action:       "appointment_" + string(target),
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	if target != domain.StatusCompleted {
		return ap, nil
	}

	// Secondary effect: best-effort, never rolls the status back.
	if err := uc.repo.AwardLoyaltyPoints(ctx, ap.ClientID, domain.LoyaltyAward); err != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: barbershopID,
			ActorID:      &actorID,
			Action:       "loyalty_award_failed",
			Entity:       "appointment",
			EntityID:     &ap.ID,
			Metadata:     map[string]any{"client_id": ap.ClientID, "points": domain.LoyaltyAward},
		})
		return ap, fmt.Errorf("%w: %v", ErrLoyaltyAward, err)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		ActorID:      &actorID,
		Action:       "loyalty_points_awarded",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		Metadata:     map[string]any{"client_id": ap.ClientID, "points": domain.LoyaltyAward},
	})

	return ap, nil
}
