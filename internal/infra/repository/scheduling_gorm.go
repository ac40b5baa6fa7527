package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo / diretório
// --------------------------------------------------

func (r *SchedulingGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *SchedulingGormRepository) GetTeamMember(
	ctx context.Context,
	id uint,
) (*models.TeamMember, error) {

	var member models.TeamMember
	if err := r.db.WithContext(ctx).
		Preload("Specialties").
		First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *SchedulingGormRepository) ListActiveServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if len(ids) == 0 {
		return services, nil
	}

	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", ids, true).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("TeamMember").
		Preload("Services").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SchedulingGormRepository) listActiveForDay(
	ctx context.Context,
	teamMemberID uint,
	date string,
	excludeID uint,
	lock bool,
) ([]models.Appointment, error) {

	// FOR UPDATE só serializa contra linhas que já existem; num dia
	// vazio dois inserts concorrentes não travariam nada. O advisory
	// lock por (profissional, dia) fecha esse buraco. Ele é transacional
	// (solta no commit/rollback), então só roda dentro de InTx.
	if lock {
		if err := r.db.WithContext(ctx).Exec(
			"SELECT pg_advisory_xact_lock(hashtextextended(?, 0))",
			fmt.Sprintf("appointments:%d:%s", teamMemberID, date),
		).Error; err != nil {
			return nil, err
		}
	}

	q := r.db.WithContext(ctx).
		Preload("Services").
		Where(
			"team_member_id = ? AND date = ? AND status IN ?",
			teamMemberID, date, domain.ActiveStatusStrings(),
		)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var aps []models.Appointment
	if err := q.Order("id ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *SchedulingGormRepository) ListActiveForDay(
	ctx context.Context,
	teamMemberID uint,
	date string,
	excludeID uint,
) ([]models.Appointment, error) {
	return r.listActiveForDay(ctx, teamMemberID, date, excludeID, false)
}

func (r *SchedulingGormRepository) ListActiveForDayLocked(
	ctx context.Context,
	teamMemberID uint,
	date string,
	excludeID uint,
) ([]models.Appointment, error) {
	return r.listActiveForDay(ctx, teamMemberID, date, excludeID, true)
}

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

func (r *SchedulingGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).
		Omit("Client", "TeamMember", "Services").
		Save(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

func (r *SchedulingGormRepository) ReplaceServices(
	ctx context.Context,
	ap *models.Appointment,
	services []models.Service,
) error {

	if err := r.db.WithContext(ctx).
		Model(ap).
		Association("Services").
		Replace(services); err != nil {
		return err
	}

	ap.Services = services
	return nil
}

func (r *SchedulingGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(ap).Association("Services").Clear(); err != nil {
			return err
		}
		return tx.Delete(ap).Error
	})
}

// DeleteActiveByTeamMember apaga os agendamentos não-terminais do
// profissional, junto com as linhas de junção. Completed/cancelled
// ficam no histórico.
func (r *SchedulingGormRepository) DeleteActiveByTeamMember(
	ctx context.Context,
	teamMemberID uint,
) (int64, error) {

	var removed int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM appointment_services
			 WHERE appointment_id IN (
			     SELECT id FROM appointments
			     WHERE team_member_id = ? AND status NOT IN ('completed', 'cancelled')
			 )`,
			teamMemberID,
		).Error; err != nil {
			return err
		}

		res := tx.
			Where(
				"team_member_id = ? AND status NOT IN ('completed', 'cancelled')",
				teamMemberID,
			).
			Delete(&models.Appointment{})
		if res.Error != nil {
			return res.Error
		}

		removed = res.RowsAffected
		return nil
	})

	return removed, err
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *SchedulingGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSchedulingGormRepository(tx))
	})
}

// isUniqueViolation detecta o 23505 do índice único
// (team_member_id, date, time)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
