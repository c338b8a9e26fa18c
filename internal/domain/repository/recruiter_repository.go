package repository

import "github.com/whitecarrot/careers-api/internal/domain/entity"

// RecruiterRepository puerto de lectura del vínculo recruiter→empresa.
type RecruiterRepository interface {
	// GetByID devuelve el vínculo del usuario o nil si no es recruiter.
	GetByID(userID string) (*entity.Recruiter, error)
}
