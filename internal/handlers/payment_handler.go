package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/studio-beleza/salon-scheduler/internal/audit"
	"github.com/studio-beleza/salon-scheduler/internal/dto"
	"github.com/studio-beleza/salon-scheduler/internal/httperr"
	"github.com/studio-beleza/salon-scheduler/internal/httpresp"
	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

type paymentStore interface {
	List(ctx context.Context) ([]models.Payment, error)
	FindByAppointmentID(ctx context.Context, appointmentID uint) (*models.Payment, error)
	GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error)
	Create(ctx context.Context, payment *models.Payment) error
}

type PaymentHandler struct {
	store paymentStore
	audit *audit.Dispatcher
}

func NewPaymentHandler(store paymentStore, auditDispatcher *audit.Dispatcher) *PaymentHandler {
	return &PaymentHandler{
		store: store,
		audit: auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PaymentRequest struct {
	AppointmentID uint    `json:"appointment_id" binding:"required"`
	AmountPaid    float64 `json:"amount_paid" binding:"required"`
	Method        string  `json:"method" binding:"required"`
	PaidAt        string  `json:"paid_at"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Println("list payments:", err)
		httperr.Internal(c, "failed_to_list_payments", "Erro ao buscar pagamentos.")
		return
	}
	httpresp.OK(c, toPaymentDTOs(payments))
}

func (h *PaymentHandler) GetByAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payment, err := h.store.FindByAppointmentID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "payment_not_found", "Pagamento não encontrado.")
			return
		}
		log.Println("get payment:", err)
		httperr.Internal(c, "failed_to_get_payment", "Erro ao buscar pagamento.")
		return
	}
	httpresp.OK(c, toPaymentDTO(*payment))
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Agendamento, valor pago e forma de pagamento são obrigatórios.")
		return
	}

	if _, err := h.store.GetAppointment(c.Request.Context(), req.AppointmentID); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.BadRequest(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		log.Println("payment appointment lookup:", err)
		httperr.Internal(c, "failed_to_register_payment", "Erro ao registrar pagamento.")
		return
	}

	paidAt := req.PaidAt
	if paidAt == "" {
		paidAt = today()
	} else if !isValidDate(paidAt) {
		httperr.BadRequest(c, "invalid_date", "Data de pagamento inválida.")
		return
	}

	payment := models.Payment{
		AppointmentID: req.AppointmentID,
		AmountPaid:    req.AmountPaid,
		Method:        req.Method,
		PaidAt:        paidAt,
	}

	if err := h.store.Create(c.Request.Context(), &payment); err != nil {
		switch {
		case errors.Is(err, storeerr.ErrDuplicateKey):
			httperr.BadRequest(c, "payment_already_registered", "Pagamento já registrado para este agendamento.")
		case errors.Is(err, storeerr.ErrForeignKey):
			httperr.BadRequest(c, "appointment_not_found", "Agendamento não encontrado.")
		default:
			log.Println("create payment:", err)
			httperr.Internal(c, "failed_to_register_payment", "Erro ao registrar pagamento.")
		}
		return
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			Action:   "payment_registered",
			Entity:   "payment",
			EntityID: &payment.ID,
		})
	}

	httpresp.Created(c, payment.ID, "Pagamento registrado com sucesso.")
}

// ======================================================
// DTO MAPPING
// ======================================================

func toPaymentDTO(p models.Payment) dto.PaymentListDTO {
	return dto.PaymentListDTO{
		ID:              p.ID,
		AppointmentID:   p.AppointmentID,
		AmountPaid:      p.AmountPaid,
		Method:          p.Method,
		PaidAt:          p.PaidAt,
		ClientName:      p.Appointment.Client.Name,
		ServiceName:     p.Appointment.Service.Name,
		ServiceValue:    p.Appointment.Service.Value,
		AppointmentDate: p.Appointment.Date,
		AppointmentTime: p.Appointment.StartTime,
	}
}

func toPaymentDTOs(payments []models.Payment) []dto.PaymentListDTO {
	out := make([]dto.PaymentListDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentDTO(p))
	}
	return out
}
