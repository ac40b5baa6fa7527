package scheduling

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Validação de candidato
// ===============================

// Booked é um agendamento ativo já gravado, reduzido ao que a checagem
// de conflito precisa: início e duração total em minutos.
type Booked struct {
	AppointmentID uint
	Start         int
	Duration      int
}

// BookedFrom projeta um agendamento carregado (com serviços) em Booked.
// A duração é sempre recalculada a partir dos serviços atuais.
func BookedFrom(ap *models.Appointment) (Booked, error) {
	start, err := MinuteOfDay(ap.Time)
	if err != nil {
		return Booked{}, err
	}
	return Booked{
		AppointmentID: ap.ID,
		Start:         start,
		Duration:      TotalDuration(ap.Services),
	}, nil
}

// CheckSpecialties exige que todo serviço pedido esteja no conjunto de
// especialidades do profissional
func CheckSpecialties(requested []uint, specialties []uint) error {
	offered := make(map[uint]bool, len(specialties))
	for _, id := range specialties {
		offered[id] = true
	}
	for _, id := range requested {
		if !offered[id] {
			return httperr.ErrBusiness("specialty_mismatch")
		}
	}
	return nil
}

// FindConflict varre os agendamentos existentes, na ordem em que foram
// carregados, e devolve a primeira janela ocupada que cruza o candidato.
//
// Duração zero (de um lado ou do outro) não conflita com nada: um
// agendamento sem duração não ocupa intervalo. O slot idêntico nesse
// caso degenerado fica por conta do índice único no banco.
func FindConflict(start, duration int, existing []Booked) *ConflictError {
	if duration <= 0 {
		return nil
	}

	candidate := Interval{Start: start, End: start + duration}

	for _, b := range existing {
		if b.Duration <= 0 {
			continue
		}
		window := Interval{Start: b.Start, End: b.Start + b.Duration}
		if candidate.Overlaps(window) {
			return &ConflictError{
				Start: FormatMinute(window.Start),
				End:   FormatMinute(window.End),
			}
		}
	}

	return nil
}
