package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studio-beleza/salon-scheduler/internal/audit"
	"github.com/studio-beleza/salon-scheduler/internal/domain/booking"
	"github.com/studio-beleza/salon-scheduler/internal/domain/schedule"
	"github.com/studio-beleza/salon-scheduler/internal/dto"
	"github.com/studio-beleza/salon-scheduler/internal/httperr"
	"github.com/studio-beleza/salon-scheduler/internal/httpresp"
	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
	ucAppointment "github.com/studio-beleza/salon-scheduler/internal/usecase/appointment"
)

// appointmentStore is the slice of the persistence gateway this handler
// uses for the plain CRUD and lookup paths.
type appointmentStore interface {
	List(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	ListByClientID(ctx context.Context, clientID uint) ([]models.Appointment, error)
	ListByClientNameContains(ctx context.Context, name string) ([]models.Appointment, error)
	Update(ctx context.Context, id uint, ap *models.Appointment) error
	Delete(ctx context.Context, id uint) error
}

type appointmentCreator interface {
	Execute(ctx context.Context, in ucAppointment.CreateAppointmentInput) (*models.Appointment, error)
}

type availabilityProvider interface {
	Execute(ctx context.Context, in booking.AvailabilityInput) (*booking.AvailabilityResult, error)
}

// slotInvalidator drops a cached availability answer after an
// appointment write touches its professional+date.
type slotInvalidator interface {
	Invalidate(ctx context.Context, professionalID uint, date string)
}

type AppointmentHandler struct {
	store        appointmentStore
	createUC     appointmentCreator
	availability availabilityProvider
	slots        slotInvalidator
	audit        *audit.Dispatcher
}

func NewAppointmentHandler(
	store appointmentStore,
	createUC appointmentCreator,
	availability availabilityProvider,
	slots slotInvalidator,
	auditDispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:        store,
		createUC:     createUC,
		availability: availability,
		slots:        slots,
		audit:        auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	ClientID       uint   `json:"client_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	RoomID         uint   `json:"room_id" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Println("list appointments:", err)
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos.")
		return
	}
	httpresp.OK(c, toListDTOs(aps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		log.Println("get appointment:", err)
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// LOOKUP BY CLIENT
// ======================================================

// ByClient accepts a numeric client id or a name fragment. The shape of
// the path parameter alone decides which typed lookup runs.
func (h *AppointmentHandler) ByClient(c *gin.Context) {
	identifier := c.Param("identifier")

	var (
		aps []models.Appointment
		err error
	)

	if clientID, convErr := strconv.ParseUint(identifier, 10, 64); convErr == nil {
		aps, err = h.store.ListByClientID(c.Request.Context(), uint(clientID))
	} else {
		aps, err = h.store.ListByClientNameContains(c.Request.Context(), identifier)
	}

	if err != nil {
		log.Println("appointments by client:", err)
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos do cliente.")
		return
	}
	httpresp.OK(c, toListDTOs(aps))
}

// ======================================================
// FREE SLOTS
// ======================================================

func (h *AppointmentHandler) FreeSlots(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	date := c.Param("date")
	if !isValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), booking.AvailabilityInput{
		ProfessionalID: id,
		Date:           date,
	})
	if err != nil {
		log.Println("free slots:", err)
		httperr.Internal(c, "failed_to_get_free_slots", "Erro ao buscar horários disponíveis.")
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// CREATE (conflict-checked)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Date:           req.Date,
		StartTime:      req.StartTime,
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		RoomID:         req.RoomID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		case httperr.IsBusiness(err, "invalid_time"):
			httperr.BadRequest(c, "invalid_time", "Hora inválida.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_duration"):
			httperr.BadRequest(c, "invalid_duration", "Serviço com duração inválida.")
		case httperr.IsBusiness(err, "time_conflict"):
			httperr.BadRequest(c, "time_conflict", "Conflito de horário: profissional já possui agendamento neste horário.")
		case errors.Is(err, storeerr.ErrForeignKey):
			httperr.BadRequest(c, "related_entity_not_found", "Cliente, profissional ou sala não encontrados.")
		default:
			log.Println("create appointment:", err)
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.Created(c, ap.ID, "Agendamento criado com sucesso.")
}

// ======================================================
// UPDATE / DELETE
// ======================================================

// Update replaces the whole appointment without re-running the conflict
// check.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios.")
		return
	}

	if !isValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	startMin, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
		return
	}

	// the current row tells which cached day to drop after the write
	current, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		log.Println("update appointment:", err)
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	ap := models.Appointment{
		Date:           req.Date,
		StartTime:      schedule.Clock(startMin),
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		RoomID:         req.RoomID,
	}

	if err := h.store.Update(c.Request.Context(), id, &ap); err != nil {
		switch {
		case errors.Is(err, storeerr.ErrNotFound):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case errors.Is(err, storeerr.ErrForeignKey):
			httperr.BadRequest(c, "related_entity_not_found", "Cliente, profissional, serviço ou sala não encontrados.")
		default:
			log.Println("update appointment:", err)
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	h.invalidateSlots(c, current.ProfessionalID, current.Date)
	if ap.ProfessionalID != current.ProfessionalID || ap.Date != current.Date {
		h.invalidateSlots(c, ap.ProfessionalID, ap.Date)
	}

	httpresp.OK(c, gin.H{"message": "Agendamento atualizado com sucesso."})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	current, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		log.Println("delete appointment:", err)
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao deletar agendamento.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		log.Println("delete appointment:", err)
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao deletar agendamento.")
		return
	}

	h.invalidateSlots(c, current.ProfessionalID, current.Date)

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			Action:   "appointment_deleted",
			Entity:   "appointment",
			EntityID: &id,
		})
	}

	httpresp.OK(c, gin.H{"message": "Agendamento deletado com sucesso."})
}

func (h *AppointmentHandler) invalidateSlots(c *gin.Context, professionalID uint, date string) {
	if h.slots != nil {
		h.slots.Invalidate(c.Request.Context(), professionalID, date)
	}
}

// ======================================================
// DTO MAPPING
// ======================================================

func toListDTOs(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:                 ap.ID,
			Date:               ap.Date,
			StartTime:          ap.StartTime,
			ClientName:         ap.Client.Name,
			ClientPhone:        ap.Client.Phone,
			ProfessionalName:   ap.Professional.Name,
			ServiceName:        ap.Service.Name,
			ServiceValue:       ap.Service.Value,
			ServiceDurationMin: ap.Service.DurationMin,
			RoomName:           ap.Room.Name,
		})
	}
	return out
}
