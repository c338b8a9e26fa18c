package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whitecarrot/careers-api/internal/domain/entity"
	"github.com/whitecarrot/careers-api/internal/domain/repository"
)

var _ repository.RecruiterRepository = (*RecruiterRepo)(nil)

// RecruiterRepo lectura del vínculo recruiter→empresa sobre PostgreSQL.
// El alta de recruiters es externa; este adaptador solo consulta.
type RecruiterRepo struct {
	pool *pgxpool.Pool
}

// NewRecruiterRepository construye el adaptador de lectura de recruiters.
func NewRecruiterRepository(pool *pgxpool.Pool) *RecruiterRepo {
	return &RecruiterRepo{pool: pool}
}

// GetByID obtiene el vínculo por id de usuario, o nil si no es recruiter.
func (r *RecruiterRepo) GetByID(userID string) (*entity.Recruiter, error) {
	query := `SELECT id, COALESCE(company_id::text, '') FROM recruiters WHERE id = $1`
	var rec entity.Recruiter
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(&rec.ID, &rec.CompanyID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recruiter: %w", err)
	}
	return &rec, nil
}
