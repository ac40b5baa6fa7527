package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/datastate"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucTeam "github.com/BruksfildServices01/salon-scheduler/internal/usecase/team"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type TeamHandler struct {
	db           *gorm.DB
	tracker      *datastate.Tracker
	deactivateUC *ucTeam.DeactivateTeamMember
}

func NewTeamHandler(
	db *gorm.DB,
	tracker *datastate.Tracker,
	deactivateUC *ucTeam.DeactivateTeamMember,
) *TeamHandler {
	return &TeamHandler{
		db:           db,
		tracker:      tracker,
		deactivateUC: deactivateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TeamMemberRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	SpecialtyIDs []uint `json:"specialties"`
	HireDate     string `json:"hire_date" binding:"required"`
	Active       *bool  `json:"is_active"`
}

// resolveSpecialties carrega os serviços ativos pedidos; id inexistente
// ou inativo invalida o request (especialidade precisa ser subconjunto
// do catálogo vigente)
func (h *TeamHandler) resolveSpecialties(ids []uint) ([]models.Service, bool) {
	if len(ids) == 0 {
		return []models.Service{}, true
	}

	var services []models.Service
	if err := h.db.
		Where("id IN ? AND active = ?", ids, true).
		Find(&services).Error; err != nil {
		return nil, false
	}

	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	if len(services) != len(seen) {
		return nil, false
	}
	return services, true
}

// ======================================================
// CRUD (listagem só traz profissionais ativos)
// ======================================================

func (h *TeamHandler) List(c *gin.Context) {
	var members []models.TeamMember
	if err := h.db.
		Preload("Specialties").
		Where("active = ?", true).
		Order("name ASC").
		Find(&members).Error; err != nil {
		httperr.Internal(c, "failed_to_list_team", "Erro ao listar equipe.")
		return
	}

	httpresp.List(c, members)
}

func (h *TeamHandler) Get(c *gin.Context) {
	var member models.TeamMember
	if err := h.db.
		Preload("Specialties").
		First(&member, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "team_member_not_found", "Profissional não encontrado.")
		return
	}

	httpresp.OK(c, member)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	phone, ok := validators.NormalizePhone(req.Phone)
	if !ok {
		httperr.BadRequest(c, "invalid_phone", "Telefone deve ter 11 dígitos.")
		return
	}

	specialties, ok := h.resolveSpecialties(req.SpecialtyIDs)
	if !ok {
		httperr.BadRequest(c, "invalid_specialties", "Especialidade fora do catálogo ativo.")
		return
	}

	member := models.TeamMember{
		Name:        req.Name,
		Phone:       phone,
		Email:       req.Email,
		Address:     req.Address,
		Specialties: specialties,
		HireDate:    req.HireDate,
		Active:      true,
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_team_member", "Erro ao criar profissional.")
		return
	}

	h.tracker.MarkDirty(c.Request.Context())
	httpresp.Created(c, member)
}

// Update roda o cascade quando o profissional sai de ativo para
// inativo: agendamentos não-terminais dele são apagados
func (h *TeamHandler) Update(c *gin.Context) {
	var member models.TeamMember
	if err := h.db.
		Preload("Specialties").
		First(&member, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "team_member_not_found", "Profissional não encontrado.")
		return
	}

	var req TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	phone, ok := validators.NormalizePhone(req.Phone)
	if !ok {
		httperr.BadRequest(c, "invalid_phone", "Telefone deve ter 11 dígitos.")
		return
	}

	specialties, ok := h.resolveSpecialties(req.SpecialtyIDs)
	if !ok {
		httperr.BadRequest(c, "invalid_specialties", "Especialidade fora do catálogo ativo.")
		return
	}

	wasActive := member.Active

	member.Name = req.Name
	member.Phone = phone
	member.Email = req.Email
	member.Address = req.Address
	member.HireDate = req.HireDate
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := h.db.Omit("Specialties").Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_team_member", "Erro ao atualizar profissional.")
		return
	}

	if err := h.db.Model(&member).Association("Specialties").Replace(specialties); err != nil {
		httperr.Internal(c, "failed_to_update_team_member", "Erro ao atualizar especialidades.")
		return
	}
	member.Specialties = specialties

	if wasActive && !member.Active {
		if _, err := h.deactivateUC.Execute(
			c.Request.Context(),
			member.ID,
			middleware.RequestID(c),
			middleware.CurrentUserID(c),
		); err != nil {
			httperr.Internal(c, "failed_to_cascade", "Erro ao remover agendamentos do profissional.")
			return
		}
	}

	h.tracker.MarkDirty(c.Request.Context())
	httpresp.OK(c, member)
}

// Delete remove o profissional, depois de rodar o mesmo cascade da
// desativação
func (h *TeamHandler) Delete(c *gin.Context) {
	var member models.TeamMember
	if err := h.db.First(&member, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "team_member_not_found", "Profissional não encontrado.")
		return
	}

	if _, err := h.deactivateUC.Execute(
		c.Request.Context(),
		member.ID,
		middleware.RequestID(c),
		middleware.CurrentUserID(c),
	); err != nil {
		httperr.Internal(c, "failed_to_cascade", "Erro ao remover agendamentos do profissional.")
		return
	}

	if err := h.db.Model(&member).Association("Specialties").Clear(); err != nil {
		httperr.Internal(c, "failed_to_delete_team_member", "Erro ao remover profissional.")
		return
	}

	if err := h.db.Delete(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_team_member", "Erro ao remover profissional.")
		return
	}

	h.tracker.MarkDirty(c.Request.Context())
	c.Status(204)
}

// ======================================================
// QUEM ATENDE UM SERVIÇO
// ======================================================

func (h *TeamHandler) AvailableForService(c *gin.Context) {
	serviceIDStr := c.Query("service_id")
	if serviceIDStr == "" {
		httpresp.OK(c, []models.TeamMember{})
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id inválido.")
		return
	}

	var members []models.TeamMember
	if err := h.db.
		Preload("Specialties").
		Joins("JOIN team_member_specialties tms ON tms.team_member_id = team_members.id").
		Where("tms.service_id = ? AND team_members.active = ?", uint(serviceID), true).
		Order("team_members.name ASC").
		Find(&members).Error; err != nil {
		httperr.Internal(c, "failed_to_list_team", "Erro ao listar equipe.")
		return
	}

	httpresp.OK(c, members)
}
