package team

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/datastate"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
)

// ======================================================
// USE CASE — CASCADE DE DESATIVAÇÃO
// ======================================================

// DeactivateTeamMember roda quando o profissional sai de ativo para
// inativo, ou antes da remoção do registro: todo agendamento dele que
// não esteja em status terminal (completed/cancelled) é apagado.
// É efeito colateral, não validação — sempre sucede e não passa por
// checagem de conflito.
type DeactivateTeamMember struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	tracker *datastate.Tracker
}

func NewDeactivateTeamMember(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tracker *datastate.Tracker,
) *DeactivateTeamMember {
	return &DeactivateTeamMember{
		repo:    repo,
		audit:   auditDispatcher,
		tracker: tracker,
	}
}

func (uc *DeactivateTeamMember) Execute(
	ctx context.Context,
	teamMemberID uint,
	requestID string,
	userID *uint,
) (int64, error) {

	removed, err := uc.repo.DeleteActiveByTeamMember(ctx, teamMemberID)
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		uc.tracker.MarkDirty(ctx)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    userID,
		Action:    "team_member_deactivated",
		Entity:    "team_member",
		EntityID:  &teamMemberID,
		RequestID: requestID,
		Metadata:  map[string]any{"appointments_removed": removed},
	})

	return removed, nil
}
