package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// one payment per appointment
	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appointment"`

	AmountPaid float64 `gorm:"not null" json:"amount_paid"`
	Method     string  `gorm:"size:50;not null" json:"method"`
	PaidAt     string  `gorm:"size:10" json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
