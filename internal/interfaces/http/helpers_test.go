package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	httpx "github.com/whitecarrot/careers-api/internal/interfaces/http"

	"github.com/whitecarrot/careers-api/internal/application/usecase"
	"github.com/whitecarrot/careers-api/internal/domain/entity"
	"github.com/whitecarrot/careers-api/internal/domain/repository"
	"github.com/whitecarrot/careers-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

// ─── Fakes en memoria de los repositorios ───────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	company, ok := r.companies[slug]
	if !ok {
		return nil, nil
	}
	clone := *company
	clone.Sections = append([]entity.Section(nil), company.Sections...)
	return &clone, nil
}

func (r *fakeCompanyRepo) UpdatePage(company *entity.Company) error {
	clone := *company
	r.companies[company.Slug] = &clone
	return nil
}

type fakeJobRepo struct {
	jobs       []*entity.Job
	lastFilter repository.JobFilter
}

func (r *fakeJobRepo) ListByCompany(companyID string, filter repository.JobFilter) ([]*entity.Job, error) {
	r.lastFilter = filter
	return r.jobs, nil
}

type fakeRecruiterRepo struct {
	recruiters map[string]*entity.Recruiter
}

func (r *fakeRecruiterRepo) GetByID(userID string) (*entity.Recruiter, error) {
	return r.recruiters[userID], nil
}

// ─── Armado de la app bajo prueba ───────────────────────────────────────────

type fixture struct {
	app           *fiber.App
	companyRepo   *fakeCompanyRepo
	jobRepo       *fakeJobRepo
	recruiterRepo *fakeRecruiterRepo
}

// newFixture levanta la app con los repositorios falsos y las rutas reales.
func newFixture(companies ...*entity.Company) *fixture {
	companyRepo := &fakeCompanyRepo{companies: map[string]*entity.Company{}}
	for _, c := range companies {
		companyRepo.companies[c.Slug] = c
	}
	jobRepo := &fakeJobRepo{}
	recruiterRepo := &fakeRecruiterRepo{recruiters: map[string]*entity.Recruiter{}}

	app := fiber.New()
	httpx.Router(app, httpx.RouterDeps{
		PublicUC:    usecase.NewPublicPageUseCase(companyRepo, jobRepo),
		RecruiterUC: usecase.NewRecruiterPageUseCase(companyRepo, recruiterRepo),
		JWTSecret:   testSecret,
	})
	return &fixture{app: app, companyRepo: companyRepo, jobRepo: jobRepo, recruiterRepo: recruiterRepo}
}

func (f *fixture) addRecruiter(userID, companyID string) {
	f.recruiterRepo.recruiters[userID] = &entity.Recruiter{ID: userID, CompanyID: companyID}
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, userID, userID+"@acme.com", "careers-api", 60)
	require.NoError(t, err)
	return token
}

// doRequest ejecuta la petición contra la app y devuelve status + cuerpo crudo.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeJSON(t *testing.T, raw []byte, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, dst))
}

// ─── Datos de prueba ────────────────────────────────────────────────────────

func publishedCompany() *entity.Company {
	return &entity.Company{
		ID:     "company-1",
		Name:   "Acme",
		Slug:   "acme",
		Status: entity.StatusPublished,
		Theme:  entity.Theme{PrimaryColor: "#0f172a", AccentColor: "#f97316"},
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
