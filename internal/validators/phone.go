package validators

import "strings"

// Telefone brasileiro com DDD: exatamente 11 dígitos, guardado sem
// pontuação ("11987654321")

const phoneDigits = 11

// NormalizePhone remove a pontuação de formatação e valida o resultado.
// Devolve o número limpo e se ele é válido.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder

	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '(' || r == ')' || r == '-' || r == '.':
			// pontuação aceita na entrada, nunca guardada
		default:
			return "", false
		}
	}

	phone := b.String()
	if len(phone) != phoneDigits {
		return "", false
	}
	return phone, true
}
