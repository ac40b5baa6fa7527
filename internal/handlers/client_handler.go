package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/datastate"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type ClientHandler struct {
	db      *gorm.DB
	tracker *datastate.Tracker
}

func NewClientHandler(db *gorm.DB, tracker *datastate.Tracker) *ClientHandler {
	return &ClientHandler{db: db, tracker: tracker}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    string  `json:"email"`
	Address  string  `json:"address"`
	Birthday *string `json:"birthday"`
	Gender   string  `json:"gender"`
}

func (r *ClientRequest) apply(client *models.Client) bool {
	phone, ok := validators.NormalizePhone(r.Phone)
	if !ok {
		return false
	}

	if r.Gender != "" && r.Gender != "M" && r.Gender != "F" && r.Gender != "O" {
		return false
	}

	client.Name = r.Name
	client.Phone = phone
	client.Email = strings.ToLower(strings.TrimSpace(r.Email))
	client.Address = r.Address
	client.Birthday = r.Birthday
	client.Gender = r.Gender
	return true
}

// ======================================================
// CRUD
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.
		Order("name ASC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var client models.Client
	if !req.apply(&client) {
		httperr.BadRequest(c, "invalid_client_data", "Telefone ou gênero inválido.")
		return
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	h.tracker.MarkDirty(c.Request.Context())
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !req.apply(&client) {
		httperr.BadRequest(c, "invalid_client_data", "Telefone ou gênero inválido.")
		return
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.tracker.MarkDirty(c.Request.Context())
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	h.tracker.MarkDirty(c.Request.Context())
	c.Status(204)
}

// ======================================================
// SEARCH (nome ou telefone)
// ======================================================

func (h *ClientHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		httpresp.OK(c, []models.Client{})
		return
	}

	like := "%" + strings.ToLower(query) + "%"

	var clients []models.Client
	if err := h.db.
		Where("LOWER(name) LIKE ? OR phone LIKE ?", like, "%"+query+"%").
		Order("name ASC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_search_clients", "Erro ao buscar clientes.")
		return
	}

	httpresp.OK(c, clients)
}
