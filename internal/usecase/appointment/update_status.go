package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/datastate"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// USE CASE — UPDATE STATUS
// ======================================================

// Transições de status são livres dentro do conjunto enumerado; valor
// fora dele é rejeitado sem tocar no status atual.
type UpdateStatus struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	tracker *datastate.Tracker
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tracker *datastate.Tracker,
) *UpdateStatus {
	return &UpdateStatus{
		repo:    repo,
		audit:   auditDispatcher,
		tracker: tracker,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id uint,
	status string,
	requestID string,
	userID *uint,
) (*models.Appointment, error) {

	if !domain.Status(status).Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	ap.Status = status
	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.tracker.MarkDirty(ctx)
	uc.audit.Dispatch(audit.Event{
		UserID:    userID,
		Action:    "appointment_status_changed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: requestID,
		Metadata:  map[string]any{"status": status},
	})

	return ap, nil
}
