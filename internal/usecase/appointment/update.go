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
// USE CASE — UPDATE
// ======================================================

type UpdateAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	tracker *datastate.Tracker
}

func NewUpdateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tracker *datastate.Tracker,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		audit:   auditDispatcher,
		tracker: tracker,
	}
}

// Execute revalida o candidato inteiro contra o banco, excluindo o
// próprio agendamento da checagem de conflito (senão ele conflitaria
// consigo mesmo ao manter a janela).
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in CandidateInput,
	requestID string,
	userID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	// status omitido mantém o status gravado; o default de "scheduled"
	// só vale na criação
	if in.Status == "" {
		in.Status = ap.Status
	}

	cand, err := resolveCandidate(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		if err := assertNoConflict(ctx, tx, cand, ap.ID); err != nil {
			return err
		}

		servicesChanged := !sameIDSet(ap.ServiceIDs(), cand.services)

		ap.ClientID = cand.client.ID
		ap.TeamMemberID = cand.member.ID
		ap.Date = cand.date
		ap.Time = domain.FormatMinute(cand.start)
		ap.Status = string(cand.status)
		ap.Notes = cand.notes

		// o snapshot de preço só é refeito quando o conjunto de
		// serviços muda; fora isso fica o valor congelado da última
		// gravação
		if servicesChanged || ap.TotalPrice == nil {
			price := domain.TotalPrice(cand.services)
			ap.TotalPrice = &price
		}

		if err := tx.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		if servicesChanged {
			return tx.ReplaceServices(ctx, ap, cand.services)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ap.Client = *cand.client
	ap.TeamMember = *cand.member
	ap.Services = cand.services

	uc.tracker.MarkDirty(ctx)
	uc.audit.Dispatch(audit.Event{
		UserID:    userID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: requestID,
	})

	return ap, nil
}

func sameIDSet(current []uint, next []models.Service) bool {
	if len(current) != len(next) {
		return false
	}
	have := make(map[uint]bool, len(current))
	for _, id := range current {
		have[id] = true
	}
	for _, s := range next {
		if !have[s.ID] {
			return false
		}
	}
	return true
}
