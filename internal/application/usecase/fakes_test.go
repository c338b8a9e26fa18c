package usecase_test

import (
	"github.com/whitecarrot/careers-api/internal/domain/entity"
	"github.com/whitecarrot/careers-api/internal/domain/repository"
)

// ─── Fakes en memoria de los repositorios ───────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company // por slug
	err       error
	updated   []*entity.Company // cada UpdatePage guarda una copia
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	repo := &fakeCompanyRepo{companies: map[string]*entity.Company{}}
	for _, c := range companies {
		repo.companies[c.Slug] = c
	}
	return repo
}

func (r *fakeCompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	if r.err != nil {
		return nil, r.err
	}
	company, ok := r.companies[slug]
	if !ok {
		return nil, nil
	}
	clone := *company
	clone.Sections = append([]entity.Section(nil), company.Sections...)
	return &clone, nil
}

func (r *fakeCompanyRepo) UpdatePage(company *entity.Company) error {
	if r.err != nil {
		return r.err
	}
	clone := *company
	r.companies[company.Slug] = &clone
	r.updated = append(r.updated, &clone)
	return nil
}

type fakeJobRepo struct {
	jobs       []*entity.Job
	err        error
	lastID     string
	lastFilter repository.JobFilter
}

func (r *fakeJobRepo) ListByCompany(companyID string, filter repository.JobFilter) ([]*entity.Job, error) {
	r.lastID = companyID
	r.lastFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	return r.jobs, nil
}

type fakeRecruiterRepo struct {
	recruiters map[string]*entity.Recruiter // por user id
	err        error
}

func newFakeRecruiterRepo(recruiters ...*entity.Recruiter) *fakeRecruiterRepo {
	repo := &fakeRecruiterRepo{recruiters: map[string]*entity.Recruiter{}}
	for _, rec := range recruiters {
		repo.recruiters[rec.ID] = rec
	}
	return repo
}

func (r *fakeRecruiterRepo) GetByID(userID string) (*entity.Recruiter, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.recruiters[userID], nil
}

// ─── Datos de prueba ────────────────────────────────────────────────────────

func publishedCompany() *entity.Company {
	return &entity.Company{
		ID:     "company-1",
		Name:   "Acme",
		Slug:   "acme",
		Status: entity.StatusPublished,
		Theme:  entity.Theme{PrimaryColor: "#0f172a"},
		Sections: []entity.Section{
			{ID: "about-1", Type: entity.SectionAbout, Title: "Nosotros", Content: entity.TextContent("Hola"), Order: 1},
		},
	}
}

func draftCompany() *entity.Company {
	c := publishedCompany()
	c.ID = "company-2"
	c.Slug = "draft-co"
	c.Status = entity.StatusDraft
	return c
}
