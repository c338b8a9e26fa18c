package usecase

import (
	"time"

	"github.com/whitecarrot/careers-api/internal/application/dto"
	"github.com/whitecarrot/careers-api/internal/domain"
	"github.com/whitecarrot/careers-api/internal/domain/entity"
	"github.com/whitecarrot/careers-api/internal/domain/repository"
)

// RecruiterPageUseCase operaciones autenticadas del editor de páginas.
// El ownership se reverifica en cada operación con una consulta puntual;
// no se cachea el resultado entre peticiones.
type RecruiterPageUseCase struct {
	companyRepo   repository.CompanyRepository
	recruiterRepo repository.RecruiterRepository
	now           func() time.Time
}

// NewRecruiterPageUseCase construye el caso de uso del recruiter.
func NewRecruiterPageUseCase(companyRepo repository.CompanyRepository, recruiterRepo repository.RecruiterRepository) *RecruiterPageUseCase {
	return &RecruiterPageUseCase{
		companyRepo:   companyRepo,
		recruiterRepo: recruiterRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// checkOwnership confirma que el usuario es recruiter exactamente de la
// empresa objetivo. Una denegación es un resultado de negocio
// (ErrNotARecruiter / ErrWrongCompany); un fallo del lookup se propaga tal cual.
func (uc *RecruiterPageUseCase) checkOwnership(userID, companyID string) error {
	recruiter, err := uc.recruiterRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if recruiter == nil || recruiter.CompanyID == "" {
		return domain.ErrNotARecruiter
	}
	if recruiter.CompanyID != companyID {
		return domain.ErrWrongCompany
	}
	return nil
}

// loadOwned resuelve la empresa por slug y verifica ownership.
// Empresa inexistente → ErrNotFound (antes de evaluar ownership: en esta
// ruta la existencia no se oculta al recruiter).
func (uc *RecruiterPageUseCase) loadOwned(userID, slug string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkOwnership(userID, company.ID); err != nil {
		return nil, err
	}
	return company, nil
}

// GetForEdit devuelve la empresa completa (draft incluido) para el editor.
func (uc *RecruiterPageUseCase) GetForEdit(userID, slug string) (*dto.CompanyResponse, error) {
	company, err := uc.loadOwned(userID, slug)
	if err != nil {
		return nil, err
	}
	return dto.ToCompanyResponse(company), nil
}

// UpdatePage aplica el patch ya validado: cada campo presente reemplaza por
// completo el valor almacenado (sin merge parcial dentro de theme ni
// elemento a elemento dentro de sections) y updated_at se refresca.
func (uc *RecruiterPageUseCase) UpdatePage(userID, slug string, patch dto.PagePatch) (*dto.CompanyResponse, error) {
	company, err := uc.loadOwned(userID, slug)
	if err != nil {
		return nil, err
	}
	if patch.Theme != nil {
		company.Theme = *patch.Theme
	}
	if patch.Sections != nil {
		company.Sections = *patch.Sections
	}
	if patch.CultureVideoSet {
		company.CultureVideoURL = patch.CultureVideoURL
	}
	company.UpdatedAt = uc.now()
	if err := uc.companyRepo.UpdatePage(company); err != nil {
		return nil, err
	}
	return dto.ToCompanyResponse(company), nil
}

// Publish marca la empresa como publicada. Idempotente sobre status; el
// timestamp se refresca aunque ya estuviera publicada.
func (uc *RecruiterPageUseCase) Publish(userID, slug string) (*dto.CompanyResponse, error) {
	return uc.setStatus(userID, slug, entity.StatusPublished)
}

// Unpublish vuelve la empresa a draft. Igual de idempotente que Publish.
func (uc *RecruiterPageUseCase) Unpublish(userID, slug string) (*dto.CompanyResponse, error) {
	return uc.setStatus(userID, slug, entity.StatusDraft)
}

func (uc *RecruiterPageUseCase) setStatus(userID, slug, status string) (*dto.CompanyResponse, error) {
	company, err := uc.loadOwned(userID, slug)
	if err != nil {
		return nil, err
	}
	company.Status = status
	company.UpdatedAt = uc.now()
	if err := uc.companyRepo.UpdatePage(company); err != nil {
		return nil, err
	}
	return dto.ToCompanyResponse(company), nil
}
