package scheduling

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ===============================
// Horário como minuto do dia
// ===============================

// MinuteOfDay converte "15:04" em minutos desde meia-noite
func MinuteOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinute faz o caminho inverso: 450 → "07:30"
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate valida uma data "2006-01-02" e a devolve normalizada
func ParseDate(d string) (string, error) {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return t.Format("2006-01-02"), nil
}

// Interval é meio-aberto [Start, End), em minutos do dia
type Interval struct {
	Start int
	End   int
}

// Overlaps: interseção de intervalos meio-abertos. Extremos encostados
// (um termina exatamente quando o outro começa) não contam como conflito.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}
