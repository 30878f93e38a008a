package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/studio-beleza/salon-scheduler/internal/domain/booking"
	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Preload("Room").
		Order("date DESC, start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Preload("Room").
		First(&ap, id).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return &ap, nil
}

// --------------------------------------------------
// Client lookup (two typed operations, no string sniffing here)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByClientID(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Preload("Room").
		Where("client_id = ?", clientID).
		Order("date DESC, start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByClientNameContains(ctx context.Context, name string) ([]models.Appointment, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(name)) + "%"

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Joins("JOIN clients ON clients.id = appointments.client_id").
		Where("LOWER(clients.name) LIKE ?", like).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Preload("Room").
		Order("date DESC, start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return aps, nil
}

// --------------------------------------------------
// Booking (conflict-check inputs + insert)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForProfessionalOnDate(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("professional_id = ? AND date = ?", professionalID, date).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetServiceDuration(ctx context.Context, serviceID uint) (int, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, serviceID).Error; err != nil {
		return 0, storeerr.Translate(err)
	}
	return service.DurationMin, nil
}

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return storeerr.Translate(err)
	}
	return nil
}

// --------------------------------------------------
// Replace / delete
// --------------------------------------------------

// Update fully replaces date, time and participants. It does not re-run
// the conflict check.
func (r *AppointmentGormRepository) Update(ctx context.Context, id uint, ap *models.Appointment) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"date":            ap.Date,
			"start_time":      ap.StartTime,
			"client_id":       ap.ClientID,
			"professional_id": ap.ProfessionalID,
			"service_id":      ap.ServiceID,
			"room_id":         ap.RoomID,
		})
	if res.Error != nil {
		return storeerr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storeerr.ErrNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return storeerr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storeerr.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ booking.Repository = (*AppointmentGormRepository)(nil)
