package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrNotARecruiter  = errors.New("el usuario no es recruiter de ninguna empresa")
	ErrWrongCompany   = errors.New("el recruiter pertenece a otra empresa")
)

// IsOwnershipDenied informa si el error es una denegación de ownership
// (resultado de negocio legítimo, distinto de un fallo de infraestructura).
func IsOwnershipDenied(err error) bool {
	return errors.Is(err, ErrNotARecruiter) || errors.Is(err, ErrWrongCompany)
}
