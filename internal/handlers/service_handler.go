package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/datastate"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db      *gorm.DB
	tracker *datastate.Tracker
}

func NewServiceHandler(db *gorm.DB, tracker *datastate.Tracker) *ServiceHandler {
	return &ServiceHandler{db: db, tracker: tracker}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	ServiceType     string  `json:"service_type" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Price           float64 `json:"price"`
	Active          *bool   `json:"is_active"`
}

func (r *ServiceRequest) apply(service *models.Service) bool {
	if !models.IsValidServiceType(r.ServiceType) {
		return false
	}
	if r.DurationMinutes <= 0 || r.Price < 0 {
		return false
	}

	service.Name = r.Name
	service.ServiceType = r.ServiceType
	service.Description = r.Description
	service.DurationMinutes = r.DurationMinutes
	service.Price = r.Price

	service.Active = true
	if r.Active != nil {
		service.Active = *r.Active
	}
	return true
}

// ======================================================
// CRUD (listagem só traz serviços ativos)
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("service_type ASC, name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var service models.Service
	if !req.apply(&service) {
		httperr.BadRequest(c, "invalid_service_data", "Tipo, duração ou preço inválido.")
		return
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.tracker.MarkDirty(c.Request.Context())
	httpresp.Created(c, service)
}

// Update permite editar um serviço já referenciado por agendamentos:
// o snapshot de total_price dos agendamentos gravados não é refeito
func (h *ServiceHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !req.apply(&service) {
		httperr.BadRequest(c, "invalid_service_data", "Tipo, duração ou preço inválido.")
		return
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.tracker.MarkDirty(c.Request.Context())
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	h.tracker.MarkDirty(c.Request.Context())
	c.Status(204)
}

// ======================================================
// FILTROS
// ======================================================

func (h *ServiceHandler) ByType(c *gin.Context) {
	serviceType := c.Query("type")
	if serviceType == "" {
		httpresp.OK(c, []models.Service{})
		return
	}

	var services []models.Service
	if err := h.db.
		Where("service_type = ? AND active = ?", serviceType, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Types(c *gin.Context) {
	types := make([]gin.H, 0, len(models.ServiceTypes))
	for _, t := range models.ServiceTypes {
		types = append(types, gin.H{"value": t})
	}
	httpresp.OK(c, types)
}
