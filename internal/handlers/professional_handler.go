package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/studio-beleza/salon-scheduler/internal/httperr"
	"github.com/studio-beleza/salon-scheduler/internal/httpresp"
	"github.com/studio-beleza/salon-scheduler/internal/infra/repository"
	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

type ProfessionalHandler struct {
	repo *repository.ProfessionalGormRepository
}

func NewProfessionalHandler(repo *repository.ProfessionalGormRepository) *ProfessionalHandler {
	return &ProfessionalHandler{repo: repo}
}

// ======================================================
// REQUESTS
// ======================================================

type ProfessionalRequest struct {
	Name         string `json:"name" binding:"required"`
	CPF          string `json:"cpf" binding:"required"`
	Role         string `json:"role" binding:"required"`
	SpecialtyIDs []uint `json:"specialty_ids"`
}

func (req *ProfessionalRequest) toModel() models.Professional {
	specialties := make([]models.Specialty, 0, len(req.SpecialtyIDs))
	for _, id := range req.SpecialtyIDs {
		specialties = append(specialties, models.Specialty{ID: id})
	}

	return models.Professional{
		Name:        req.Name,
		CPF:         req.CPF,
		Role:        req.Role,
		Specialties: specialties,
	}
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ProfessionalHandler) List(c *gin.Context) {
	pros, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Println("list professionals:", err)
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao buscar profissionais.")
		return
	}
	httpresp.OK(c, pros)
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pro, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return
		}
		log.Println("get professional:", err)
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional.")
		return
	}
	httpresp.OK(c, pro)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome, CPF e cargo são obrigatórios.")
		return
	}

	pro := req.toModel()

	if err := h.repo.Create(c.Request.Context(), &pro); err != nil {
		switch {
		case errors.Is(err, storeerr.ErrDuplicateKey):
			httperr.BadRequest(c, "cpf_already_registered", "CPF já cadastrado.")
		case errors.Is(err, storeerr.ErrForeignKey):
			httperr.BadRequest(c, "specialty_not_found", "Especialidade não encontrada.")
		default:
			log.Println("create professional:", err)
			httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		}
		return
	}

	httpresp.Created(c, pro.ID, "Profissional criado com sucesso.")
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome, CPF e cargo são obrigatórios.")
		return
	}

	pro := req.toModel()

	if err := h.repo.Update(c.Request.Context(), id, &pro); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return
		}
		log.Println("update professional:", err)
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Profissional atualizado com sucesso."})
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return
		}
		log.Println("delete professional:", err)
		httperr.Internal(c, "failed_to_delete_professional", "Erro ao deletar profissional.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Profissional deletado com sucesso."})
}
