package appointment

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fakeRepo guarda tudo em memória e imita o comportamento relevante do
// banco: ordem de gravação, filtro de status ativo e o índice único em
// (profissional, data, hora).
type fakeRepo struct {
	clients  map[uint]*models.Client
	members  map[uint]*models.TeamMember
	services map[uint]models.Service

	appointments []*models.Appointment
	nextID       uint

	lockedCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:  make(map[uint]*models.Client),
		members:  make(map[uint]*models.TeamMember),
		services: make(map[uint]models.Service),
		nextID:   1,
	}
}

func (f *fakeRepo) addClient(c models.Client) *models.Client {
	f.clients[c.ID] = &c
	return &c
}

func (f *fakeRepo) addMember(m models.TeamMember) *models.TeamMember {
	f.members[m.ID] = &m
	return &m
}

func (f *fakeRepo) addService(s models.Service) models.Service {
	f.services[s.ID] = s
	return s
}

func (f *fakeRepo) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetTeamMember(ctx context.Context, id uint) (*models.TeamMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeRepo) ListActiveServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	seen := make(map[uint]bool, len(ids))
	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if s, ok := f.services[id]; ok && s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == id {
			return ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) listActiveForDay(teamMemberID uint, date string, excludeID uint) []models.Appointment {
	active := make(map[string]bool)
	for _, s := range domain.ActiveStatusStrings() {
		active[s] = true
	}
	out := make([]models.Appointment, 0)
	for _, ap := range f.appointments {
		if ap.TeamMemberID != teamMemberID || ap.Date != date {
			continue
		}
		if excludeID > 0 && ap.ID == excludeID {
			continue
		}
		if !active[ap.Status] {
			continue
		}
		out = append(out, *ap)
	}
	return out
}

func (f *fakeRepo) ListActiveForDay(ctx context.Context, teamMemberID uint, date string, excludeID uint) ([]models.Appointment, error) {
	return f.listActiveForDay(teamMemberID, date, excludeID), nil
}

func (f *fakeRepo) ListActiveForDayLocked(ctx context.Context, teamMemberID uint, date string, excludeID uint) ([]models.Appointment, error) {
	f.lockedCalls++
	return f.listActiveForDay(teamMemberID, date, excludeID), nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	for _, other := range f.appointments {
		if other.TeamMemberID == ap.TeamMemberID && other.Date == ap.Date && other.Time == ap.Time {
			return httperr.ErrBusiness("slot_taken")
		}
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	for _, other := range f.appointments {
		if other.ID != ap.ID && other.TeamMemberID == ap.TeamMemberID &&
			other.Date == ap.Date && other.Time == ap.Time {
			return httperr.ErrBusiness("slot_taken")
		}
	}
	return nil
}

func (f *fakeRepo) ReplaceServices(ctx context.Context, ap *models.Appointment, services []models.Service) error {
	ap.Services = services
	return nil
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, ap *models.Appointment) error {
	out := f.appointments[:0]
	for _, other := range f.appointments {
		if other.ID != ap.ID {
			out = append(out, other)
		}
	}
	f.appointments = out
	return nil
}

func (f *fakeRepo) DeleteActiveByTeamMember(ctx context.Context, teamMemberID uint) (int64, error) {
	var removed int64
	out := f.appointments[:0]
	for _, ap := range f.appointments {
		if ap.TeamMemberID == teamMemberID && !domain.Status(ap.Status).Terminal() {
			removed++
			continue
		}
		out = append(out, ap)
	}
	f.appointments = out
	return removed, nil
}

func (f *fakeRepo) InTx(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)
