package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whitecarrot/careers-api/internal/domain/entity"
	"github.com/whitecarrot/careers-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// theme y sections viven en columnas JSONB y se (de)serializan explícitamente.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// GetBySlug obtiene la empresa completa por slug, o nil si no existe.
func (r *CompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	query := `
		SELECT id, name, slug, status, theme, sections, culture_video_url, created_at, updated_at
		FROM companies WHERE slug = $1`
	var (
		c           entity.Company
		themeRaw    []byte
		sectionsRaw []byte
	)
	err := r.pool.QueryRow(context.Background(), query, slug).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Status, &themeRaw, &sectionsRaw,
		&c.CultureVideoURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by slug: %w", err)
	}
	if len(themeRaw) > 0 {
		if err := json.Unmarshal(themeRaw, &c.Theme); err != nil {
			return nil, fmt.Errorf("decode theme: %w", err)
		}
	}
	if len(sectionsRaw) > 0 {
		if err := json.Unmarshal(sectionsRaw, &c.Sections); err != nil {
			return nil, fmt.Errorf("decode sections: %w", err)
		}
	}
	return &c, nil
}

// UpdatePage reemplaza por completo los campos editables de la página
// (theme, sections, culture_video_url, status) y el updated_at.
func (r *CompanyRepo) UpdatePage(company *entity.Company) error {
	themeRaw, err := json.Marshal(company.Theme)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	sections := company.Sections
	if sections == nil {
		sections = []entity.Section{}
	}
	sectionsRaw, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("encode sections: %w", err)
	}
	query := `
		UPDATE companies
		SET status = $2, theme = $3, sections = $4, culture_video_url = $5, updated_at = $6
		WHERE id = $1`
	_, err = r.pool.Exec(context.Background(), query,
		company.ID, company.Status, themeRaw, sectionsRaw,
		company.CultureVideoURL, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company page: %w", err)
	}
	return nil
}
