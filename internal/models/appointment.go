package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// calendar date "2006-01-02" and time-of-day "HH:MM:SS";
	// the appointment occupies [start, start+service.DurationMin) for its professional
	Date      string `gorm:"size:10;not null;index:idx_appointments_prof_date,priority:2" json:"date"`
	StartTime string `gorm:"size:8;not null" json:"start_time"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID uint         `gorm:"index:idx_appointments_prof_date,priority:1" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	RoomID uint `json:"room_id"`
	Room   Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"room"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
