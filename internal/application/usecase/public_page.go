package usecase

import (
	"github.com/whitecarrot/careers-api/internal/application/dto"
	"github.com/whitecarrot/careers-api/internal/domain"
	"github.com/whitecarrot/careers-api/internal/domain/repository"
)

// PublicPageUseCase lecturas anónimas de páginas publicadas.
// Una empresa en draft es indistinguible de una inexistente: ambas
// devuelven ErrNotFound para no filtrar su estado.
type PublicPageUseCase struct {
	companyRepo repository.CompanyRepository
	jobRepo     repository.JobRepository
}

// NewPublicPageUseCase construye el caso de uso con los puertos de lectura.
func NewPublicPageUseCase(companyRepo repository.CompanyRepository, jobRepo repository.JobRepository) *PublicPageUseCase {
	return &PublicPageUseCase{companyRepo: companyRepo, jobRepo: jobRepo}
}

// GetPublishedCompany devuelve el subconjunto público de la empresa si y
// solo si está publicada.
func (uc *PublicPageUseCase) GetPublishedCompany(slug string) (*dto.PublicCompanyResponse, error) {
	company, err := uc.companyRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsPublished() {
		return nil, domain.ErrNotFound
	}
	return dto.ToPublicCompanyResponse(company), nil
}

// GetPublishedJobs lista las vacantes de una empresa publicada, ordenadas por
// posted_at descendente y filtradas con AND por los criterios presentes.
// Revalida el estado de publicación antes de tocar las vacantes.
func (uc *PublicPageUseCase) GetPublishedJobs(slug string, in dto.JobFilterRequest) (*dto.JobsEnvelope, error) {
	company, err := uc.companyRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsPublished() {
		return nil, domain.ErrNotFound
	}
	jobs, err := uc.jobRepo.ListByCompany(company.ID, repository.JobFilter{
		Location: in.Location,
		JobType:  in.JobType,
		Query:    in.Query,
	})
	if err != nil {
		return nil, err
	}
	envelope := dto.ToJobsEnvelope(jobs)
	return &envelope, nil
}
