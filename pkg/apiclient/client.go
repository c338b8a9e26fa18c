// Package apiclient cliente tipado de la API de páginas de carreras.
// La credencial se pasa explícitamente en cada llamada autenticada en vez de
// leerse de estado ambiental: el token es un argumento, no una cookie.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/whitecarrot/careers-api/internal/application/dto"
	"github.com/whitecarrot/careers-api/internal/domain/editor"
	"github.com/whitecarrot/careers-api/internal/domain/entity"
)

// APIError error devuelto por la API con su status HTTP y el mensaje del
// cuerpo {"error": ...}. Cuando el cuerpo no es estructurado, Message cae
// al mensaje genérico.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

const genericFailure = "Request failed."

// JobFilters filtros opcionales del listado público de vacantes.
type JobFilters struct {
	Location string
	JobType  string
	Query    string
}

// Client cliente HTTP de la API. Seguro para reutilizar entre llamadas.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. httpClient nil usa uno propio con timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

// PublishedCompany obtiene la página publicada de una empresa (anónimo).
func (c *Client) PublishedCompany(ctx context.Context, slug string) (*entity.Company, error) {
	var envelope dto.PublicCompanyEnvelope
	err := c.do(ctx, http.MethodGet, "/api/public/company/"+url.PathEscape(slug), "", nil, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Company.ToEntity(), nil
}

// PublishedJobs lista las vacantes publicadas de una empresa (anónimo).
func (c *Client) PublishedJobs(ctx context.Context, slug string, filters JobFilters) ([]entity.Job, error) {
	path := "/api/public/company/" + url.PathEscape(slug) + "/jobs"
	query := url.Values{}
	if filters.Location != "" {
		query.Set("location", filters.Location)
	}
	if filters.JobType != "" {
		query.Set("jobType", filters.JobType)
	}
	if filters.Query != "" {
		query.Set("q", filters.Query)
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var envelope dto.JobsEnvelope
	if err := c.do(ctx, http.MethodGet, path, "", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Jobs, nil
}

// CompanyForEdit obtiene la empresa completa para el editor (autenticado).
func (c *Client) CompanyForEdit(ctx context.Context, token, slug string) (*entity.Company, error) {
	var envelope dto.CompanyEnvelope
	err := c.do(ctx, http.MethodGet, "/api/recruiter/company/"+url.PathEscape(slug), token, nil, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Company.ToEntity(), nil
}

// SavePage envía el guardado completo de la página y devuelve el registro
// actualizado (nil si la respuesta no trae empresa: el llamante decide el
// fallback local).
func (c *Client) SavePage(ctx context.Context, token, slug string, payload editor.UpdatePayload) (*entity.Company, error) {
	var envelope dto.CompanyEnvelope
	err := c.do(ctx, http.MethodPut, "/api/recruiter/company/"+url.PathEscape(slug), token, payload, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Company.ToEntity(), nil
}

// Publish publica la página de la empresa.
func (c *Client) Publish(ctx context.Context, token, slug string) (*entity.Company, error) {
	return c.postAction(ctx, token, slug, "publish")
}

// Unpublish devuelve la página a draft.
func (c *Client) Unpublish(ctx context.Context, token, slug string) (*entity.Company, error) {
	return c.postAction(ctx, token, slug, "unpublish")
}

func (c *Client) postAction(ctx context.Context, token, slug, action string) (*entity.Company, error) {
	var envelope dto.CompanyEnvelope
	path := "/api/recruiter/company/" + url.PathEscape(slug) + "/" + action
	if err := c.do(ctx, http.MethodPost, path, token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Company.ToEntity(), nil
}

// do ejecuta la petición: serializa el body si existe, adjunta el token si
// la llamada es autenticada y decodifica el envoltorio de éxito o el
// {"error": ...} de fallo.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorMessage extrae el mensaje del cuerpo de error. Los detalles de
// validación se aplanan a "campo: mensajes" como hacía el cliente original;
// sin cuerpo estructurado se cae al mensaje genérico.
func errorMessage(raw []byte) string {
	var plain struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &plain); err == nil && plain.Error != "" {
		return plain.Error
	}
	var structured struct {
		Error dto.ValidationDetail `json:"error"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil {
		var lines []string
		lines = append(lines, structured.Error.FormErrors...)
		for field, errs := range structured.Error.FieldErrors {
			if len(errs) > 0 {
				lines = append(lines, field+": "+strings.Join(errs, ", "))
			}
		}
		if len(lines) > 0 {
			return strings.Join(lines, " | ")
		}
	}
	return genericFailure
}
