package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studio-beleza/salon-scheduler/internal/httperr"
	"github.com/studio-beleza/salon-scheduler/internal/httpresp"
	"github.com/studio-beleza/salon-scheduler/internal/infra/repository"
	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

type ClientHandler struct {
	repo *repository.ClientGormRepository
}

func NewClientHandler(repo *repository.ClientGormRepository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name      string `json:"name" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	BirthDate string `json:"birth_date"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Println("list clients:", err)
		httperr.Internal(c, "failed_to_list_clients", "Erro ao buscar clientes.")
		return
	}
	httpresp.OK(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		log.Println("get client:", err)
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome, CPF e telefone são obrigatórios.")
		return
	}

	client := models.Client{
		Name:      req.Name,
		CPF:       req.CPF,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	}

	if err := h.repo.Create(c.Request.Context(), &client); err != nil {
		if errors.Is(err, storeerr.ErrDuplicateKey) {
			httperr.BadRequest(c, "cpf_already_registered", "CPF já cadastrado.")
			return
		}
		log.Println("create client:", err)
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	httpresp.Created(c, client.ID, "Cliente criado com sucesso.")
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome, CPF e telefone são obrigatórios.")
		return
	}

	client := models.Client{
		Name:      req.Name,
		CPF:       req.CPF,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	}

	if err := h.repo.Update(c.Request.Context(), id, &client); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		log.Println("update client:", err)
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Cliente atualizado com sucesso."})
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		log.Println("delete client:", err)
		httperr.Internal(c, "failed_to_delete_client", "Erro ao deletar cliente.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Cliente deletado com sucesso."})
}

// parseID reads the :id path param; writes the 400 itself on failure.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}
