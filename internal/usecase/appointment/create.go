package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/studio-beleza/salon-scheduler/internal/audit"
	"github.com/studio-beleza/salon-scheduler/internal/cache"
	"github.com/studio-beleza/salon-scheduler/internal/domain/booking"
	"github.com/studio-beleza/salon-scheduler/internal/domain/schedule"
	"github.com/studio-beleza/salon-scheduler/internal/httperr"
	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

type CreateAppointmentInput struct {
	Date           string
	StartTime      string
	ClientID       uint
	ProfessionalID uint
	ServiceID      uint
	RoomID         uint
}

type CreateAppointment struct {
	repo  booking.Repository
	audit *audit.Dispatcher
	slots *cache.SlotCache
	locks *bookingLocks
}

// NewCreateAppointment builds the booking use case. audit and slots may
// be nil; serialize guards the read-check-insert sequence with a
// per professional+date mutex instead of the default unguarded run.
func NewCreateAppointment(
	repo booking.Repository,
	auditDispatcher *audit.Dispatcher,
	slots *cache.SlotCache,
	serialize bool,
) *CreateAppointment {
	uc := &CreateAppointment{
		repo:  repo,
		audit: auditDispatcher,
		slots: slots,
	}
	if serialize {
		uc.locks = newBookingLocks()
	}
	return uc
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startMin, err := schedule.ParseClock(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if uc.locks != nil {
		unlock := uc.locks.acquire(lockKey(in.ProfessionalID, in.Date))
		defer unlock()
	}

	duration, err := uc.repo.GetServiceDuration(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	existing, err := uc.repo.ListForProfessionalOnDate(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.Booked, 0, len(existing))
	for _, ap := range existing {
		min, err := schedule.ParseClock(ap.StartTime)
		if err != nil {
			return nil, err
		}
		booked = append(booked, schedule.Booked{
			StartMin:    min,
			DurationMin: ap.Service.DurationMin,
		})
	}

	hit, err := schedule.CheckConflict(booked, startMin, duration)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_duration")
	}
	if hit != nil {
		uc.dispatch(audit.Event{
			Action: "appointment_conflict",
			Entity: "appointment",
			Metadata: map[string]any{
				"date":            in.Date,
				"start_time":      schedule.Clock(startMin),
				"professional_id": in.ProfessionalID,
				"conflicts_with":  schedule.Clock(hit.StartMin),
			},
		})
		return nil, httperr.ErrBusiness("time_conflict")
	}

	ap := &models.Appointment{
		Date:           in.Date,
		StartTime:      schedule.Clock(startMin),
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		RoomID:         in.RoomID,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.slots != nil {
		uc.slots.Invalidate(ctx, in.ProfessionalID, in.Date)
	}

	uc.dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) dispatch(ev audit.Event) {
	if uc.audit != nil {
		uc.audit.Dispatch(ev)
	}
}
