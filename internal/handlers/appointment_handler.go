package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/datastate"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db      *gorm.DB
	cache   *cache.Cache
	tracker *datastate.Tracker
	audit   *audit.Dispatcher

	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	statusUC *ucAppointment.UpdateStatus
	slotsUC  *ucAppointment.GetAvailableSlots
	totalsUC *ucAppointment.ComputeTotals
}

func NewAppointmentHandler(
	db *gorm.DB,
	c *cache.Cache,
	tracker *datastate.Tracker,
	auditDispatcher *audit.Dispatcher,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	statusUC *ucAppointment.UpdateStatus,
	slotsUC *ucAppointment.GetAvailableSlots,
	totalsUC *ucAppointment.ComputeTotals,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		cache:    c,
		tracker:  tracker,
		audit:    auditDispatcher,
		createUC: createUC,
		updateUC: updateUC,
		statusUC: statusUC,
		slotsUC:  slotsUC,
		totalsUC: totalsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientID     uint   `json:"client" binding:"required"`
	TeamMemberID uint   `json:"team_member" binding:"required"`
	ServiceIDs   []uint `json:"services"`
	Date         string `json:"appointment_date" binding:"required"`
	Time         string `json:"appointment_time" binding:"required"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

func (r *AppointmentRequest) candidate() ucAppointment.CandidateInput {
	return ucAppointment.CandidateInput{
		ClientID:     r.ClientID,
		TeamMemberID: r.TeamMemberID,
		ServiceIDs:   r.ServiceIDs,
		Date:         r.Date,
		Time:         r.Time,
		Status:       r.Status,
		Notes:        r.Notes,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ERRO DE SCHEDULING → HTTP
// ======================================================

// Toda rejeição distingue "especialidade errada" de "conflito de
// horário" de "slot já tomado", com mensagem legível
func writeSchedulingError(c *gin.Context, err error) {
	if conflict, ok := domain.AsConflict(err); ok {
		httperr.WriteDetails(c, http.StatusBadRequest,
			"time_conflict",
			"Conflito de horário: o profissional já tem agendamento nessa janela.",
			gin.H{
				"conflict_start": conflict.Start,
				"conflict_end":   conflict.End,
			},
		)
		return
	}

	switch {
	case httperr.IsBusiness(err, "specialty_mismatch"):
		httperr.BadRequest(c, "specialty_mismatch",
			"O profissional selecionado não oferece todos os serviços solicitados.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.BadRequest(c, "slot_taken",
			"Este horário já está ocupado para o profissional selecionado.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Formato de data inválido. Use YYYY-MM-DD.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Formato de hora inválido. Use HH:MM.")
	case httperr.IsBusiness(err, "client_not_found"):
		httperr.BadRequest(c, "client_not_found", "Cliente não encontrado.")
	case httperr.IsBusiness(err, "team_member_not_found"):
		httperr.BadRequest(c, "team_member_not_found", "Profissional não encontrado ou inativo.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado ou inativo.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	default:
		httperr.Internal(c, "scheduling_error", "Erro ao processar agendamento.")
	}
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		req.candidate(),
		middleware.RequestID(c),
		middleware.CurrentUserID(c),
	)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(
		c.Request.Context(),
		id,
		req.candidate(),
		middleware.RequestID(c),
		middleware.CurrentUserID(c),
	)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.statusUC.Execute(
		c.Request.Context(),
		id,
		req.Status,
		middleware.RequestID(c),
		middleware.CurrentUserID(c),
	)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST (filtros pass-through) / DETAIL / DELETE
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	q := h.db.
		Preload("Client").
		Preload("TeamMember").
		Preload("Services")

	if start := c.Query("start_date"); start != "" {
		q = q.Where("date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		q = q.Where("date <= ?", end)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if member := c.Query("team_member"); member != "" {
		q = q.Where("team_member_id = ?", member)
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, dto.AppointmentListViewsFrom(aps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	var ap models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("TeamMember").
		Preload("Services").
		First(&ap, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	var ap models.Appointment
	if err := h.db.First(&ap, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ap).Association("Services").Clear(); err != nil {
			return err
		}
		return tx.Delete(&ap).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	h.tracker.MarkDirty(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		UserID:    middleware.CurrentUserID(c),
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: middleware.RequestID(c),
	})

	c.Status(204)
}

// ======================================================
// TODAY / UPCOMING (cacheados, melhor-esforço)
// ======================================================

func (h *AppointmentHandler) Today(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	key := "appointments_today_" + today

	var views []dto.AppointmentListView
	if h.cache.GetJSON(c.Request.Context(), key, &views) {
		httpresp.OK(c, views)
		return
	}

	var aps []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("TeamMember").
		Preload("Services").
		Where("date = ?", today).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	views = dto.AppointmentListViewsFrom(aps)
	h.cache.SetJSON(c.Request.Context(), key, views, cache.TTLToday)
	httpresp.OK(c, views)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	key := "appointments_upcoming_" + today + "_" + nextWeek

	var views []dto.AppointmentListView
	if h.cache.GetJSON(c.Request.Context(), key, &views) {
		httpresp.OK(c, views)
		return
	}

	var aps []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("TeamMember").
		Preload("Services").
		Where("date >= ? AND date <= ? AND status IN ?",
			today, nextWeek,
			[]string{string(domain.StatusScheduled), string(domain.StatusConfirmed)},
		).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	views = dto.AppointmentListViewsFrom(aps)
	h.cache.SetJSON(c.Request.Context(), key, views, cache.TTLUpcoming)
	httpresp.OK(c, views)
}

// ======================================================
// AVAILABLE SLOTS / TOTALS
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	memberStr := c.Query("team_member")

	if date == "" || memberStr == "" {
		httperr.BadRequest(c, "missing_parameters", "Data e profissional são obrigatórios.")
		return
	}

	memberID, err := strconv.ParseUint(memberStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_team_member", "team_member inválido.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), uint(memberID), date)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"available_slots": slots})
}

func (h *AppointmentHandler) Totals(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	totals, err := h.totalsUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	httpresp.OK(c, totals)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
