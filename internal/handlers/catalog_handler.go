package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/studio-beleza/salon-scheduler/internal/httperr"
	"github.com/studio-beleza/salon-scheduler/internal/httpresp"
	"github.com/studio-beleza/salon-scheduler/internal/infra/repository"
)

// CatalogHandler serves the read-only reference entities.
type CatalogHandler struct {
	repo *repository.CatalogGormRepository
}

func NewCatalogHandler(repo *repository.CatalogGormRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		log.Println("list services:", err)
		httperr.Internal(c, "failed_to_list_services", "Erro ao buscar serviços.")
		return
	}
	httpresp.OK(c, services)
}

func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.repo.ListRooms(c.Request.Context())
	if err != nil {
		log.Println("list rooms:", err)
		httperr.Internal(c, "failed_to_list_rooms", "Erro ao buscar salas.")
		return
	}
	httpresp.OK(c, rooms)
}

func (h *CatalogHandler) ListSpecialties(c *gin.Context) {
	specialties, err := h.repo.ListSpecialties(c.Request.Context())
	if err != nil {
		log.Println("list specialties:", err)
		httperr.Internal(c, "failed_to_list_specialties", "Erro ao buscar especialidades.")
		return
	}
	httpresp.OK(c, specialties)
}
