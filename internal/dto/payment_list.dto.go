package dto

type PaymentListDTO struct {
	ID              uint    `json:"id"`
	AppointmentID   uint    `json:"appointment_id"`
	AmountPaid      float64 `json:"amount_paid"`
	Method          string  `json:"method"`
	PaidAt          string  `json:"paid_at"`
	ClientName      string  `json:"client_name"`
	ServiceName     string  `json:"service_name"`
	ServiceValue    float64 `json:"service_value"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
}
