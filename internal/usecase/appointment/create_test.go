package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// seedSalon monta o cenário padrão: um cliente, um profissional ativo
// com especialidades 1 e 2, e o catálogo de serviços.
func seedSalon(repo *fakeRepo) {
	repo.addClient(models.Client{ID: 1, Name: "Maria Souza", Phone: "11987654321"})

	corte := repo.addService(models.Service{
		ID: 1, Name: "Corte Feminino", ServiceType: models.ServiceTypeCabelo,
		Price: 45.50, DurationMinutes: 60, Active: true,
	})
	manicure := repo.addService(models.Service{
		ID: 2, Name: "Manicure", ServiceType: models.ServiceTypeUnhas,
		Price: 30.00, DurationMinutes: 30, Active: true,
	})
	repo.addService(models.Service{
		ID: 3, Name: "Limpeza de Pele", ServiceType: models.ServiceTypePele,
		Price: 90.00, DurationMinutes: 45, Active: true,
	})
	repo.addService(models.Service{
		ID: 4, Name: "Desativado", ServiceType: models.ServiceTypeCabelo,
		Price: 10.00, DurationMinutes: 15, Active: false,
	})

	repo.addMember(models.TeamMember{
		ID: 1, Name: "Ana Lima", Phone: "11912345678", Active: true,
		Specialties: []models.Service{corte, manicure},
	})
}

func validInput() CandidateInput {
	return CandidateInput{
		ClientID:     1,
		TeamMemberID: 1,
		ServiceIDs:   []uint{1},
		Date:         "2026-09-10",
		Time:         "10:00",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), validInput(), "req-1", nil)

	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
	assert.Equal(t, "scheduled", ap.Status)
	assert.Equal(t, "2026-09-10", ap.Date)
	assert.Equal(t, "10:00", ap.Time)
	assert.Equal(t, "Maria Souza", ap.Client.Name)
	assert.Equal(t, "Ana Lima", ap.TeamMember.Name)

	// snapshot de preço gravado junto
	require.NotNil(t, ap.TotalPrice)
	assert.Equal(t, 45.50, *ap.TotalPrice)

	// a checagem de conflito rodou dentro da transação, sobre linhas travadas
	assert.Equal(t, 1, repo.lockedCalls)
}

func TestCreateAppointment_OverlapRejected(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)

	// 10:00–11:00 ocupado; 10:30 cruza
	in := validInput()
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in, "req-2", nil)

	require.Error(t, err)
	conflict, ok := domain.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, "10:00", conflict.Start)
	assert.Equal(t, "11:00", conflict.End)
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointment_TouchingBoundaryAllowed(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)

	// começa exatamente quando o anterior termina
	in := validInput()
	in.Time = "11:00"
	_, err = uc.Execute(context.Background(), in, "req-2", nil)

	assert.NoError(t, err)
	assert.Len(t, repo.appointments, 2)
}

func TestCreateAppointment_TerminalStatusDoesNotBlock(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	first, err := uc.Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)
	first.Status = string(domain.StatusCancelled)

	// mesma janela, mas o anterior foi cancelado e saiu da agenda
	in := validInput()
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in, "req-2", nil)

	assert.NoError(t, err)
}

func TestCreateAppointment_SpecialtyMismatch(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	// serviço 3 está ativo mas fora das especialidades da profissional
	in := validInput()
	in.ServiceIDs = []uint{1, 3}
	_, err := uc.Execute(context.Background(), in, "req-1", nil)

	assert.True(t, httperr.IsBusiness(err, "specialty_mismatch"))
	assert.Empty(t, repo.appointments)
}

func TestCreateAppointment_InactiveServiceRejected(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	in := validInput()
	in.ServiceIDs = []uint{4}
	_, err := uc.Execute(context.Background(), in, "req-1", nil)

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointment_InactiveMemberRejected(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	repo.members[1].Active = false
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput(), "req-1", nil)

	assert.True(t, httperr.IsBusiness(err, "team_member_not_found"))
}

func TestCreateAppointment_UnknownReferences(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	in := validInput()
	in.ClientID = 99
	_, err := uc.Execute(context.Background(), in, "req-1", nil)
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))

	in = validInput()
	in.TeamMemberID = 99
	_, err = uc.Execute(context.Background(), in, "req-2", nil)
	assert.True(t, httperr.IsBusiness(err, "team_member_not_found"))

	in = validInput()
	in.ServiceIDs = []uint{1, 99}
	_, err = uc.Execute(context.Background(), in, "req-3", nil)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointment_BadInput(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	in := validInput()
	in.Date = "10/09/2026"
	_, err := uc.Execute(context.Background(), in, "req-1", nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	in = validInput()
	in.Time = "25:00"
	_, err = uc.Execute(context.Background(), in, "req-2", nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	in = validInput()
	in.Status = "done"
	_, err = uc.Execute(context.Background(), in, "req-3", nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCreateAppointment_NoServicesSkipsConflictCheck(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)

	// sem serviços a duração é zero: não ocupa intervalo e passa por
	// dentro da janela do outro
	in := validInput()
	in.ServiceIDs = nil
	in.Time = "10:30"
	ap, err := uc.Execute(context.Background(), in, "req-2", nil)

	require.NoError(t, err)
	assert.Nil(t, ap.TotalPrice)
	assert.Equal(t, 1, repo.lockedCalls) // só o primeiro create travou linhas
}

func TestCreateAppointment_ExactSlotFallsToUniqueIndex(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)

	// duração zero não conflita, mas o slot idêntico bate no índice único
	in := validInput()
	in.ServiceIDs = nil
	_, err = uc.Execute(context.Background(), in, "req-2", nil)

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestCreateAppointment_DuplicateServiceIDsCountedOnce(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	uc := NewCreateAppointment(repo, nil, nil)

	in := validInput()
	in.ServiceIDs = []uint{1, 1, 2}
	ap, err := uc.Execute(context.Background(), in, "req-1", nil)

	require.NoError(t, err)
	assert.Len(t, ap.Services, 2)
	require.NotNil(t, ap.TotalPrice)
	assert.Equal(t, 75.50, *ap.TotalPrice)
}
