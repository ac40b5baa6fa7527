package httperr

import "errors"

// BusinessError é um erro de regra de negócio com código estável.
// Códigos usados pelo scheduling:
//
//	specialty_mismatch — serviço pedido fora das especialidades
//	slot_taken         — índice único (profissional, data, hora) violado
//	invalid_status     — status fora do conjunto enumerado
//	invalid_date       — data fora do formato 2006-01-02
//	invalid_time       — hora fora do formato 15:04
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
