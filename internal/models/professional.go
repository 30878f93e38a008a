package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`
	CPF  string `gorm:"size:14;uniqueIndex;not null" json:"cpf"`
	Role string `gorm:"size:50;not null" json:"role"`

	Specialties []Specialty `gorm:"many2many:professional_specialties;" json:"specialties"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
