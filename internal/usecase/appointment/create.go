package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/datastate"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// USE CASE — CREATE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	tracker *datastate.Tracker
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tracker *datastate.Tracker,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		audit:   auditDispatcher,
		tracker: tracker,
	}
}

// Execute valida o candidato e grava. A checagem de conflito e o insert
// rodam na mesma transação, com as linhas do dia travadas — duas
// submissões simultâneas para a mesma janela não passam as duas.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CandidateInput,
	requestID string,
	userID *uint,
) (*models.Appointment, error) {

	cand, err := resolveCandidate(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:     cand.client.ID,
		TeamMemberID: cand.member.ID,
		Services:     cand.services,
		Date:         cand.date,
		Time:         domain.FormatMinute(cand.start),
		Status:       string(cand.status),
		Notes:        cand.notes,
	}

	// snapshot do preço no momento da gravação
	if len(cand.services) > 0 {
		price := domain.TotalPrice(cand.services)
		ap.TotalPrice = &price
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		if err := assertNoConflict(ctx, tx, cand, 0); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	ap.Client = *cand.client
	ap.TeamMember = *cand.member

	uc.tracker.MarkDirty(ctx)
	uc.audit.Dispatch(audit.Event{
		UserID:    userID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: requestID,
	})

	return ap, nil
}
