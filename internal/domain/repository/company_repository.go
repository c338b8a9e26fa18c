package repository

import "github.com/whitecarrot/careers-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// GetBySlug devuelve la empresa completa o nil si no existe.
	GetBySlug(slug string) (*entity.Company, error)
	// UpdatePage persiste theme, sections, culture_video_url, status y
	// updated_at de la empresa (reemplazo completo de cada campo).
	UpdatePage(company *entity.Company) error
}
