package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	CPF   string `gorm:"size:14;uniqueIndex;not null" json:"cpf"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	// calendar date, "2006-01-02"
	BirthDate string `gorm:"size:10" json:"birth_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
