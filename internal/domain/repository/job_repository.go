package repository

import "github.com/whitecarrot/careers-api/internal/domain/entity"

// JobFilter filtros opcionales del listado público de vacantes.
// Los filtros presentes se combinan con AND.
type JobFilter struct {
	Location string // igualdad exacta
	JobType  string // igualdad exacta
	Query    string // substring case-insensitive sobre title
}

// JobRepository puerto de lectura de vacantes (creadas en otro sistema).
type JobRepository interface {
	// ListByCompany devuelve las vacantes de la empresa ordenadas por
	// posted_at descendente, aplicando los filtros presentes.
	ListByCompany(companyID string, filter JobFilter) ([]*entity.Job, error)
}
