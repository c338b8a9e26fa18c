package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whitecarrot/careers-api/internal/domain/entity"
	"github.com/whitecarrot/careers-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo lectura de vacantes sobre PostgreSQL. Las vacantes se insertan
// desde otro sistema; aquí no hay escrituras.
type JobRepo struct {
	pool *pgxpool.Pool
}

// NewJobRepository construye el adaptador de lectura de vacantes.
func NewJobRepository(pool *pgxpool.Pool) *JobRepo {
	return &JobRepo{pool: pool}
}

// ListByCompany lista vacantes de la empresa ordenadas por posted_at DESC.
// Los filtros presentes se añaden como condiciones AND: location y job_type
// por igualdad exacta, q como substring case-insensitive sobre title.
func (r *JobRepo) ListByCompany(companyID string, filter repository.JobFilter) ([]*entity.Job, error) {
	query := `
		SELECT id, title, location, job_type, department, level, work_mode, salary_text, slug, posted_at
		FROM jobs WHERE company_id = $1`
	args := []any{companyID}

	if filter.Location != "" {
		args = append(args, filter.Location)
		query += fmt.Sprintf(" AND location = $%d", len(args))
	}
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		query += fmt.Sprintf(" AND job_type = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	query += " ORDER BY posted_at DESC"

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var list []*entity.Job
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Location, &j.JobType, &j.Department,
			&j.Level, &j.WorkMode, &j.SalaryText, &j.Slug, &j.PostedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}
