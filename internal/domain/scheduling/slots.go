package scheduling

// ===============================
// Grade de horários livres
// ===============================

const (
	SlotGranularityMinutes = 30

	// Janela de atendimento exibida ao cliente
	WindowStartMinute = 7 * 60  // 07:00
	WindowEndMinute   = 21 * 60 // 21:00
)

// AvailableSlots devolve os horários livres da grade ("HH:MM", ordem
// crescente) para um dia de um profissional, dados os agendamentos
// ativos carregados.
//
// A ocupação caminha a partir do início exato de cada agendamento, em
// passos da granularidade, até alcançar ou passar o fim. Um agendamento
// de 60 min às 10:00 derruba 10:00 e 10:30 da grade. Início fora da
// grade gera marcas fora da grade e não derruba slot nenhum — é assim
// que o sistema sempre se comportou.
func AvailableSlots(booked []Booked) []string {
	occupied := make(map[int]bool)

	for _, b := range booked {
		if b.Duration <= 0 {
			continue
		}
		end := b.Start + b.Duration
		for t := b.Start; t < end; t += SlotGranularityMinutes {
			occupied[t] = true
		}
	}

	slots := make([]string, 0, (WindowEndMinute-WindowStartMinute)/SlotGranularityMinutes)
	for t := WindowStartMinute; t < WindowEndMinute; t += SlotGranularityMinutes {
		if !occupied[t] {
			slots = append(slots, FormatMinute(t))
		}
	}

	return slots
}
