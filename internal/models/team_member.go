package models

import "time"

// Profissional do salão com suas especialidades (serviços que pode executar)
type TeamMember struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:11;not null" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`

	Specialties []Service `gorm:"many2many:team_member_specialties;" json:"specialties"`

	HireDate string `gorm:"size:10" json:"hire_date"`
	Active   bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpecialtyIDs retorna o conjunto de serviços que o profissional oferece
func (t *TeamMember) SpecialtyIDs() []uint {
	ids := make([]uint, 0, len(t.Specialties))
	for _, s := range t.Specialties {
		ids = append(ids, s.ID)
	}
	return ids
}
