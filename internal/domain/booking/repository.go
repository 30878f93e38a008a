package booking

import (
	"context"

	"github.com/studio-beleza/salon-scheduler/internal/models"
)

// Repository is the slice of the persistence gateway the booking use
// cases depend on. Implementations translate store failures into the
// storeerr outcomes.
type Repository interface {
	// ListForProfessionalOnDate returns the professional's appointments
	// on the date ordered by start time, each with its Service loaded.
	ListForProfessionalOnDate(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]models.Appointment, error)

	GetServiceDuration(
		ctx context.Context,
		serviceID uint,
	) (int, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
