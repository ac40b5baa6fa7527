package models

import "time"

// Agendamento: cliente + profissional + serviços em uma data/hora.
// Data e hora são guardadas como relógio de parede local ("2006-01-02",
// "15:04"), sem conversão de timezone. O índice único em
// (team_member_id, date, time) barra slots idênticos no banco,
// independente da checagem de sobreposição.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	TeamMemberID uint       `gorm:"not null;uniqueIndex:idx_member_date_time" json:"team_member_id"`
	TeamMember   TeamMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"team_member"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_member_date_time" json:"appointment_date"`
	Time string `gorm:"size:5;not null;uniqueIndex:idx_member_date_time" json:"appointment_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	// Snapshot no momento da gravação; não acompanha mudanças de preço
	// posteriores nos serviços
	TotalPrice *float64 `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceIDs retorna os serviços anexados, na ordem guardada
func (a *Appointment) ServiceIDs() []uint {
	ids := make([]uint, 0, len(a.Services))
	for _, s := range a.Services {
		ids = append(ids, s.ID)
	}
	return ids
}
