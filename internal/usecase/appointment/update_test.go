package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestUpdateAppointment_ExcludesItselfFromConflictCheck(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)

	created, err := NewCreateAppointment(repo, nil, nil).
		Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)

	// mantém a mesma janela; sem a exclusão do próprio registro isso
	// conflitaria consigo mesmo
	in := validInput()
	in.Notes = "cliente pediu a mesma profissional"
	updated, err := NewUpdateAppointment(repo, nil, nil).
		Execute(context.Background(), created.ID, in, "req-2", nil)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "cliente pediu a mesma profissional", updated.Notes)
}

func TestUpdateAppointment_ConflictWithOther(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	createUC := NewCreateAppointment(repo, nil, nil)

	first, err := createUC.Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)

	second := validInput()
	second.Time = "14:00"
	other, err := createUC.Execute(context.Background(), second, "req-2", nil)
	require.NoError(t, err)

	// tenta mover o segundo para dentro da janela do primeiro
	move := validInput()
	move.Time = "10:30"
	_, err = NewUpdateAppointment(repo, nil, nil).
		Execute(context.Background(), other.ID, move, "req-3", nil)

	require.Error(t, err)
	conflict, ok := domain.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, "10:00", conflict.Start)
	assert.Equal(t, "11:00", conflict.End)

	// mantém o que já estava gravado
	stored, _ := repo.GetAppointment(context.Background(), first.ID)
	assert.Equal(t, "10:00", stored.Time)
}

func TestUpdateAppointment_PriceSnapshotOnlyRefreshedOnServiceChange(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)

	created, err := NewCreateAppointment(repo, nil, nil).
		Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)
	require.NotNil(t, created.TotalPrice)
	assert.Equal(t, 45.50, *created.TotalPrice)

	// reajuste de preço depois da gravação
	corte := repo.services[1]
	corte.Price = 60.00
	repo.services[1] = corte

	// mover de horário sem mexer nos serviços mantém o snapshot antigo
	in := validInput()
	in.Time = "15:00"
	updated, err := NewUpdateAppointment(repo, nil, nil).
		Execute(context.Background(), created.ID, in, "req-2", nil)
	require.NoError(t, err)
	require.NotNil(t, updated.TotalPrice)
	assert.Equal(t, 45.50, *updated.TotalPrice)

	// trocar o conjunto de serviços refaz o snapshot com o preço vivo
	in.ServiceIDs = []uint{1, 2}
	updated, err = NewUpdateAppointment(repo, nil, nil).
		Execute(context.Background(), created.ID, in, "req-3", nil)
	require.NoError(t, err)
	require.NotNil(t, updated.TotalPrice)
	assert.Equal(t, 90.00, *updated.TotalPrice)
	assert.Len(t, updated.Services, 2)
}

func TestUpdateAppointment_OmittedStatusKeepsStoredStatus(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)

	created, err := NewCreateAppointment(repo, nil, nil).
		Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)

	_, err = NewUpdateStatus(repo, nil, nil).
		Execute(context.Background(), created.ID, "confirmed", "req-2", nil)
	require.NoError(t, err)

	// mover só o horário, sem status no payload, não pode desconfirmar
	in := validInput()
	in.Time = "15:00"
	updated, err := NewUpdateAppointment(repo, nil, nil).
		Execute(context.Background(), created.ID, in, "req-3", nil)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	// status explícito no payload continua valendo
	in.Status = "in_progress"
	updated, err = NewUpdateAppointment(repo, nil, nil).
		Execute(context.Background(), created.ID, in, "req-4", nil)

	require.NoError(t, err)
	assert.Equal(t, "in_progress", updated.Status)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)

	_, err := NewUpdateAppointment(repo, nil, nil).
		Execute(context.Background(), 99, validInput(), "req-1", nil)

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)

	created, err := NewCreateAppointment(repo, nil, nil).
		Execute(context.Background(), validInput(), "req-1", nil)
	require.NoError(t, err)

	uc := NewUpdateStatus(repo, nil, nil)

	updated, err := uc.Execute(context.Background(), created.ID, "confirmed", "req-2", nil)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	// valor fora do conjunto é rejeitado antes de carregar o registro
	_, err = uc.Execute(context.Background(), created.ID, "agendado", "req-3", nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	stored, _ := repo.GetAppointment(context.Background(), created.ID)
	assert.Equal(t, "confirmed", stored.Status)

	_, err = uc.Execute(context.Background(), 99, "confirmed", "req-4", nil)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
