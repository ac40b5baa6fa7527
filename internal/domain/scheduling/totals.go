package scheduling

import (
	"math"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Totais derivados
// ===============================

// TotalPrice soma o preço dos serviços anexados, arredondado a centavos.
// O valor é gravado no agendamento quando os serviços são anexados ou
// trocados — é um snapshot, não acompanha reajuste de preço posterior.
func TotalPrice(services []models.Service) float64 {
	var total float64
	for _, s := range services {
		total += s.Price
	}
	return math.Round(total*100) / 100
}

// TotalDuration soma a duração dos serviços anexados, em minutos.
// Nunca é persistida: sempre recalculada sobre os serviços atuais, então
// reflete mudanças de duração feitas depois do agendamento (diferente do
// preço, que fica congelado — comportamento herdado do sistema).
func TotalDuration(services []models.Service) int {
	var total int
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}
