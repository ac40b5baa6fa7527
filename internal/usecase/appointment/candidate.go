package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// CANDIDATO (entrada de create / update)
// ======================================================

type CandidateInput struct {
	ClientID     uint
	TeamMemberID uint
	ServiceIDs   []uint

	Date string // 2006-01-02
	Time string // 15:04

	Status string // vazio → scheduled
	Notes  string
}

// candidate é o input já resolvido contra o banco e validado até a
// checagem de especialidade; falta só o conflito de horário, que roda
// dentro da transação.
type candidate struct {
	client   *models.Client
	member   *models.TeamMember
	services []models.Service

	date     string
	start    int // minuto do dia
	duration int
	status   domain.Status
	notes    string
}

// resolveCandidate valida formato, referências, status e especialidades.
// Ordem fixa: especialidade antes de qualquer checagem de horário.
func resolveCandidate(
	ctx context.Context,
	repo domain.Repository,
	in CandidateInput,
) (*candidate, error) {

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	start, err := domain.MinuteOfDay(in.Time)
	if err != nil {
		return nil, err
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		status = domain.Status(in.Status)
		if !status.Valid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	client, err := repo.GetClient(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	member, err := repo.GetTeamMember(ctx, in.TeamMemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("team_member_not_found")
		}
		return nil, err
	}
	if !member.Active {
		return nil, httperr.ErrBusiness("team_member_not_found")
	}

	services, err := repo.ListActiveServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(uniqueIDs(in.ServiceIDs)) {
		// algum id não existe ou está inativo
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if err := domain.CheckSpecialties(in.ServiceIDs, member.SpecialtyIDs()); err != nil {
		return nil, err
	}

	return &candidate{
		client:   client,
		member:   member,
		services: services,
		date:     date,
		start:    start,
		duration: domain.TotalDuration(services),
		status:   status,
		notes:    in.Notes,
	}, nil
}

// assertNoConflict roda dentro da transação, sobre as linhas travadas
// com FOR UPDATE. excludeID > 0 tira o próprio agendamento (update).
func assertNoConflict(
	ctx context.Context,
	tx domain.Repository,
	cand *candidate,
	excludeID uint,
) error {

	// duração zero não ocupa intervalo; só o índice único se aplica
	if cand.duration <= 0 {
		return nil
	}

	existing, err := tx.ListActiveForDayLocked(
		ctx,
		cand.member.ID,
		cand.date,
		excludeID,
	)
	if err != nil {
		return err
	}

	booked := make([]domain.Booked, 0, len(existing))
	for i := range existing {
		b, err := domain.BookedFrom(&existing[i])
		if err != nil {
			return err
		}
		booked = append(booked, b)
	}

	if conflict := domain.FindConflict(cand.start, cand.duration, booked); conflict != nil {
		return *conflict
	}

	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
