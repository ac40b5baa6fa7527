package scheduling

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// ActiveStatuses são os status que ocupam a agenda do profissional.
// Agendamentos fora desse conjunto não entram na checagem de conflito.
var ActiveStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
}

// ActiveStatusStrings é o conjunto ativo no formato que o repositório consome
func ActiveStatusStrings() []string {
	out := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		out[i] = string(s)
	}
	return out
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Terminal: o agendamento saiu da agenda de vez. Usado pelo cascade de
// desativação de profissional — terminais são preservados.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func InitialStatus() Status {
	return StatusScheduled
}
