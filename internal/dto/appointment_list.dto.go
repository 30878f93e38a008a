package dto

type AppointmentListDTO struct {
	ID                 uint    `json:"id"`
	Date               string  `json:"date"`
	StartTime          string  `json:"start_time"`
	ClientName         string  `json:"client_name"`
	ClientPhone        string  `json:"client_phone"`
	ProfessionalName   string  `json:"professional_name"`
	ServiceName        string  `json:"service_name"`
	ServiceValue       float64 `json:"service_value"`
	ServiceDurationMin int     `json:"service_duration_min"`
	RoomName           string  `json:"room_name"`
}
