package scheduling

import (
	"errors"
	"fmt"
)

// ===============================
// Erros de negócio do scheduling
// ===============================

// ConflictError: a janela pedida cruza um agendamento ativo do mesmo
// profissional no mesmo dia. Start/End ("HH:MM") são a janela ocupada,
// devolvidos ao cliente para exibição.
type ConflictError struct {
	Start string
	End   string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("time_conflict: %s-%s", e.Start, e.End)
}

func AsConflict(err error) (ConflictError, bool) {
	var ce ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}
