package entity

import "time"

// Estados de publicación de una página de empresa.
// Una empresa solo es visible por la ruta pública cuando está published.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Company agregado raíz de una página de carreras, identificada por slug único.
// theme y sections se persisten como JSONB; se reemplazan por completo en cada
// actualización (sin merge parcial).
type Company struct {
	ID              string
	Name            string
	Slug            string
	Status          string // draft | published
	Theme           Theme
	Sections        []Section
	CultureVideoURL *string // nil = sin video
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPublished indica si la página es visible para visitantes anónimos.
func (c *Company) IsPublished() bool {
	return c.Status == StatusPublished
}
