package scheduling

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository é a porta de persistência que o scheduling consome.
// A validação de conflito sempre lê daqui (dado vivo), nunca do cache.
type Repository interface {
	// -------- Catálogo / diretório --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// GetTeamMember carrega o profissional com as especialidades
	GetTeamMember(
		ctx context.Context,
		id uint,
	) (*models.TeamMember, error)

	// ListActiveServicesByIDs resolve os serviços pedidos; só serviços
	// ativos são elegíveis para agendamento
	ListActiveServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Agendamentos --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// ListActiveForDay carrega os agendamentos com status ativo do
	// profissional no dia, com serviços, na ordem de gravação.
	// excludeID > 0 tira o próprio agendamento do conjunto (update).
	ListActiveForDay(
		ctx context.Context,
		teamMemberID uint,
		date string,
		excludeID uint,
	) ([]models.Appointment, error)

	// ListActiveForDayLocked é a variante com SELECT ... FOR UPDATE,
	// usada dentro da transação de criação/atualização para fechar a
	// corrida valida-depois-grava
	ListActiveForDayLocked(
		ctx context.Context,
		teamMemberID uint,
		date string,
		excludeID uint,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ReplaceServices troca o conjunto de serviços anexados
	ReplaceServices(
		ctx context.Context,
		ap *models.Appointment,
		services []models.Service,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// DeleteActiveByTeamMember apaga os agendamentos não-terminais do
	// profissional (cascade de desativação/remoção)
	DeleteActiveByTeamMember(
		ctx context.Context,
		teamMemberID uint,
	) (int64, error)

	// InTx executa fn numa transação; o Repository recebido opera
	// dentro dela
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
