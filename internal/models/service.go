package models

import "time"

// Tipos de serviço oferecidos pelo salão
const (
	ServiceTypeCabelo    = "cabelo"
	ServiceTypeUnhas     = "unhas"
	ServiceTypeBarba     = "barba"
	ServiceTypeMaquiagem = "maquiagem"
	ServiceTypePele      = "pele"
)

var ServiceTypes = []string{
	ServiceTypeCabelo,
	ServiceTypeUnhas,
	ServiceTypeBarba,
	ServiceTypeMaquiagem,
	ServiceTypePele,
}

func IsValidServiceType(t string) bool {
	for _, st := range ServiceTypes {
		if st == t {
			return true
		}
	}
	return false
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	ServiceType string `gorm:"size:20" json:"service_type"`
	Description string `gorm:"size:255" json:"description"`

	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Active          bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
