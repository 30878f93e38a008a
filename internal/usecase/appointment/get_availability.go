package appointment

import (
	"context"

	"github.com/studio-beleza/salon-scheduler/internal/cache"
	"github.com/studio-beleza/salon-scheduler/internal/domain/booking"
	"github.com/studio-beleza/salon-scheduler/internal/domain/schedule"
)

type GetAvailability struct {
	repo   booking.Repository
	slots  *cache.SlotCache
	hours  schedule.Hours
	strict bool
}

// NewGetAvailability builds the availability use case. slots may be nil
// when no cache is configured; strict selects true-overlap slot
// exclusion instead of the default occupied-minute marking.
func NewGetAvailability(
	repo booking.Repository,
	slots *cache.SlotCache,
	hours schedule.Hours,
	strict bool,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		slots:  slots,
		hours:  hours,
		strict: strict,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in booking.AvailabilityInput,
) (*booking.AvailabilityResult, error) {

	if uc.slots != nil {
		if res, ok := uc.slots.Get(ctx, in.ProfessionalID, in.Date); ok {
			return res, nil
		}
	}

	aps, err := uc.repo.ListForProfessionalOnDate(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.Booked, 0, len(aps))
	existing := make([]booking.DayAppointment, 0, len(aps))

	for _, ap := range aps {
		startMin, err := schedule.ParseClock(ap.StartTime)
		if err != nil {
			return nil, err
		}
		booked = append(booked, schedule.Booked{
			StartMin:    startMin,
			DurationMin: ap.Service.DurationMin,
		})
		existing = append(existing, booking.DayAppointment{
			StartTime:   ap.StartTime,
			DurationMin: ap.Service.DurationMin,
		})
	}

	var freeMin []int
	if uc.strict {
		freeMin = schedule.FreeSlotsStrict(booked, uc.hours)
	} else {
		freeMin = schedule.FreeSlots(booked, uc.hours)
	}

	free := make([]string, 0, len(freeMin))
	for _, m := range freeMin {
		free = append(free, schedule.Clock(m))
	}

	res := &booking.AvailabilityResult{
		Date:                 in.Date,
		ProfessionalID:       in.ProfessionalID,
		FreeSlots:            free,
		ExistingAppointments: existing,
	}

	if uc.slots != nil {
		uc.slots.Set(ctx, res)
	}

	return res, nil
}
