package dto

import (
	"strings"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Visão achatada para listagens: nomes no lugar de registros embutidos,
// serviços como texto, duração sempre recalculada dos serviços atuais
type AppointmentListView struct {
	ID              uint     `json:"id"`
	ClientName      string   `json:"client_name"`
	TeamMemberName  string   `json:"team_member_name"`
	ServicesList    string   `json:"services_list"`
	AppointmentDate string   `json:"appointment_date"`
	AppointmentTime string   `json:"appointment_time"`
	Status          string   `json:"status"`
	TotalPrice      *float64 `json:"total_price"`
	TotalDuration   int      `json:"total_duration"`
}

func AppointmentListViewFrom(ap *models.Appointment) AppointmentListView {
	names := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		names = append(names, s.Name)
	}

	return AppointmentListView{
		ID:              ap.ID,
		ClientName:      ap.Client.Name,
		TeamMemberName:  ap.TeamMember.Name,
		ServicesList:    strings.Join(names, ", "),
		AppointmentDate: ap.Date,
		AppointmentTime: ap.Time,
		Status:          ap.Status,
		TotalPrice:      ap.TotalPrice,
		TotalDuration:   domain.TotalDuration(ap.Services),
	}
}

func AppointmentListViewsFrom(aps []models.Appointment) []AppointmentListView {
	views := make([]AppointmentListView, 0, len(aps))
	for i := range aps {
		views = append(views, AppointmentListViewFrom(&aps[i]))
	}
	return views
}
