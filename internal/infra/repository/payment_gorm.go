package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Appointment").
		Preload("Appointment.Client").
		Preload("Appointment.Service").
		Order("paid_at DESC").
		Find(&payments).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return payments, nil
}

func (r *PaymentGormRepository) FindByAppointmentID(ctx context.Context, appointmentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Appointment").
		Preload("Appointment.Client").
		Preload("Appointment.Service").
		Where("appointment_id = ?", appointmentID).
		First(&payment).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return &payment, nil
}

// GetAppointment confirms the referenced appointment exists before a
// payment is registered.
func (r *PaymentGormRepository) GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return &ap, nil
}

// Create inserts the payment; the unique index on appointment_id turns a
// second payment for the same appointment into ErrDuplicateKey.
func (r *PaymentGormRepository) Create(ctx context.Context, payment *models.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return storeerr.Translate(err)
	}
	return nil
}
