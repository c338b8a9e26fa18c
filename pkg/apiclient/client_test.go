package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitecarrot/careers-api/internal/domain/editor"
	"github.com/whitecarrot/careers-api/internal/domain/entity"
	"github.com/whitecarrot/careers-api/pkg/apiclient"
)

// capturedRequest lo que vio el servidor en la última petición.
type capturedRequest struct {
	method string
	path   string
	query  string
	auth   string
	body   []byte
}

// newTestServer levanta un servidor que responde siempre con status y body
// fijos, capturando la petición recibida.
func newTestServer(t *testing.T, status int, respBody string) (*apiclient.Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.auth = r.Header.Get("Authorization")
		captured.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(respBody))
	}))
	t.Cleanup(server.Close)
	return apiclient.New(server.URL, server.Client()), captured
}

func TestPublishedCompany_DecodificaEnvoltorio(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{
		"company": {
			"id": "company-1", "name": "Acme", "slug": "acme", "status": "published",
			"theme": {"primaryColor": "#111827"},
			"sections": [{"id": "about-1", "type": "about", "content": "Hola", "order": 1}],
			"culture_video_url": null
		}
	}`)

	company, err := client.PublishedCompany(context.Background(), "acme")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, "#111827", company.Theme.PrimaryColor)
	require.Len(t, company.Sections, 1)
	assert.Nil(t, company.CultureVideoURL)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/api/public/company/acme", captured.path)
	assert.Empty(t, captured.auth, "la ruta pública viaja sin credencial")
}

func TestPublishedJobs_ArmaLaQuery(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"jobs": [{"id": "j1", "title": "Backend"}]}`)

	jobs, err := client.PublishedJobs(context.Background(), "acme", apiclient.JobFilters{
		Location: "Remote",
		JobType:  "full-time",
		Query:    "engineer",
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, "/api/public/company/acme/jobs", captured.path)
	assert.Equal(t, "jobType=full-time&location=Remote&q=engineer", captured.query)
}

func TestPublishedJobs_SinFiltrosSinQuery(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"jobs": []}`)

	jobs, err := client.PublishedJobs(context.Background(), "acme", apiclient.JobFilters{})
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.Empty(t, captured.query)
}

func TestSavePage_EnviaTokenYPayloadCompleto(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"company": {"id": "company-1", "slug": "acme", "status": "draft"}}`)

	payload := editor.UpdatePayload{
		Theme:    entity.Theme{PrimaryColor: "#000"},
		Sections: []entity.Section{{ID: "s1", Type: entity.SectionAbout, Order: 1}},
	}
	company, err := client.SavePage(context.Background(), "mi-token", "acme", payload)
	require.NoError(t, err)
	require.NotNil(t, company)

	assert.Equal(t, http.MethodPut, captured.method)
	assert.Equal(t, "Bearer mi-token", captured.auth)

	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(captured.body, &sent))
	// El guardado siempre lleva los tres campos, presentes aunque vacíos.
	assert.Contains(t, sent, "theme")
	assert.Contains(t, sent, "sections")
	assert.Contains(t, sent, "culture_video_url")
}

func TestPublishYUnpublish_Rutas(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, `{"company": {"id": "c1", "slug": "acme", "status": "published"}}`)

	company, err := client.Publish(context.Background(), "tok", "acme")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPublished, company.Status)
	assert.Equal(t, "/api/recruiter/company/acme/publish", captured.path)
	assert.Equal(t, http.MethodPost, captured.method)

	_, err = client.Unpublish(context.Background(), "tok", "acme")
	require.NoError(t, err)
	assert.Equal(t, "/api/recruiter/company/acme/unpublish", captured.path)
}

// ─── Mapeo de errores ───────────────────────────────────────────────────────

func TestAPIError_MensajePlano(t *testing.T) {
	client, _ := newTestServer(t, http.StatusNotFound, `{"error": "Company not found"}`)

	_, err := client.PublishedCompany(context.Background(), "no-existe")
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Company not found", apiErr.Message)
}

func TestAPIError_DetalleDeValidacionSeAplana(t *testing.T) {
	client, _ := newTestServer(t, http.StatusBadRequest,
		`{"error": {"formErrors": [], "fieldErrors": {"culture_video_url": ["Invalid url"]}}}`)

	_, err := client.SavePage(context.Background(), "tok", "acme", editor.UpdatePayload{})
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "culture_video_url: Invalid url", apiErr.Message)
}

func TestAPIError_CuerpoNoEstructuradoCaeAlGenerico(t *testing.T) {
	client, _ := newTestServer(t, http.StatusBadGateway, `upstream exploded`)

	_, err := client.PublishedCompany(context.Background(), "acme")
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Request failed.", apiErr.Message)
}

func TestContextCancelado(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `{"company": null}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.PublishedCompany(ctx, "acme")
	assert.Error(t, err)
}
