package booking

type AvailabilityInput struct {
	ProfessionalID uint
	Date           string
}

// DayAppointment is one existing appointment in an availability answer.
type DayAppointment struct {
	StartTime   string `json:"start_time"`
	DurationMin int    `json:"duration_min"`
}

type AvailabilityResult struct {
	Date                 string           `json:"date"`
	ProfessionalID       uint             `json:"professional_id"`
	FreeSlots            []string         `json:"free_slots"`
	ExistingAppointments []DayAppointment `json:"existing_appointments"`
}
