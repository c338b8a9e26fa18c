package dto

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/whitecarrot/careers-api/internal/domain/entity"
)

// PublicCompanyResponse subconjunto público de una empresa publicada.
// Coincide columna a columna con el select de la ruta pública original.
type PublicCompanyResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Theme           entity.Theme     `json:"theme"`
	Sections        []entity.Section `json:"sections"`
	CultureVideoURL *string          `json:"culture_video_url"`
	Status          string           `json:"status"`
}

// CompanyResponse empresa completa para el editor del recruiter.
type CompanyResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Status          string           `json:"status"`
	Theme           entity.Theme     `json:"theme"`
	Sections        []entity.Section `json:"sections"`
	CultureVideoURL *string          `json:"culture_video_url"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// CompanyEnvelope envoltorio de éxito: {"company": ...}.
type CompanyEnvelope struct {
	Company *CompanyResponse `json:"company"`
}

// PublicCompanyEnvelope envoltorio de éxito de la ruta pública.
type PublicCompanyEnvelope struct {
	Company *PublicCompanyResponse `json:"company"`
}

// UpdateCompanyPageRequest patch del PUT de recruiter. Los campos se capturan
// como JSON crudo para distinguir ausente / null / mal tipado y poder
// reportar errores por campo en vez de rechazar el cuerpo entero.
// Un campo ausente queda con RawMessage vacío; un null explícito llega como
// el literal "null".
type UpdateCompanyPageRequest struct {
	Theme           json.RawMessage `json:"theme"`
	Sections        json.RawMessage `json:"sections"`
	CultureVideoURL json.RawMessage `json:"culture_video_url"`
}

// PagePatch patch ya validado listo para aplicar sobre la entidad.
// Cada campo presente reemplaza por completo el valor almacenado.
type PagePatch struct {
	Theme           *entity.Theme
	Sections        *[]entity.Section
	CultureVideoSet bool    // true si el request incluía culture_video_url
	CultureVideoURL *string // valor normalizado ("" → nil)
}

// Validate valida el request contra el contrato aceptado y construye el
// patch. Devuelve el detalle de validación cuando algún campo falla.
func (r UpdateCompanyPageRequest) Validate() (PagePatch, *ValidationDetail) {
	detail := NewValidationDetail()
	var patch PagePatch

	// Del theme solo se valida la forma (debe ser un objeto); su contenido
	// es arbitrario y se persiste verbatim.
	if len(r.Theme) > 0 {
		var theme entity.Theme
		if err := json.Unmarshal(r.Theme, &theme); err != nil || string(r.Theme) == "null" {
			detail.AddFieldError("theme", "Expected object")
		} else {
			patch.Theme = &theme
		}
	}

	if len(r.Sections) > 0 {
		var sections []entity.Section
		if err := json.Unmarshal(r.Sections, &sections); err != nil || string(r.Sections) == "null" {
			detail.AddFieldError("sections", "Expected array")
		} else {
			if sections == nil {
				sections = []entity.Section{}
			}
			patch.Sections = &sections
		}
	}

	if len(r.CultureVideoURL) > 0 {
		patch.CultureVideoSet = true
		if value, fieldErr := parseCultureVideoURL(r.CultureVideoURL); fieldErr != "" {
			detail.AddFieldError("culture_video_url", fieldErr)
			patch.CultureVideoSet = false
		} else {
			patch.CultureVideoURL = value
		}
	}

	if detail.HasErrors() {
		return PagePatch{}, detail
	}
	return patch, nil
}

// parseCultureVideoURL normaliza el valor del video: null y "" se guardan
// como null; cualquier otro string debe ser una URL absoluta.
func parseCultureVideoURL(raw json.RawMessage) (*string, string) {
	if string(raw) == "null" {
		return nil, ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, "Expected string or null"
	}
	if s == "" {
		return nil, ""
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, "Invalid url"
	}
	return &s, ""
}

// ToPublicCompanyResponse proyecta la entidad al subconjunto público.
func ToPublicCompanyResponse(c *entity.Company) *PublicCompanyResponse {
	if c == nil {
		return nil
	}
	return &PublicCompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Theme:           c.Theme,
		Sections:        sectionsOrEmpty(c.Sections),
		CultureVideoURL: c.CultureVideoURL,
		Status:          c.Status,
	}
}

// ToCompanyResponse proyecta la entidad completa para el recruiter.
func ToCompanyResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Status:          c.Status,
		Theme:           c.Theme,
		Sections:        sectionsOrEmpty(c.Sections),
		CultureVideoURL: c.CultureVideoURL,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func sectionsOrEmpty(sections []entity.Section) []entity.Section {
	if sections == nil {
		return []entity.Section{}
	}
	return sections
}

// ToEntity reconstruye la entidad desde la respuesta completa (lado cliente).
func (r *CompanyResponse) ToEntity() *entity.Company {
	if r == nil {
		return nil
	}
	return &entity.Company{
		ID:              r.ID,
		Name:            r.Name,
		Slug:            r.Slug,
		Status:          r.Status,
		Theme:           r.Theme,
		Sections:        r.Sections,
		CultureVideoURL: r.CultureVideoURL,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToEntity reconstruye la entidad desde el subconjunto público (lado cliente).
func (r *PublicCompanyResponse) ToEntity() *entity.Company {
	if r == nil {
		return nil
	}
	return &entity.Company{
		ID:              r.ID,
		Name:            r.Name,
		Slug:            r.Slug,
		Status:          r.Status,
		Theme:           r.Theme,
		Sections:        r.Sections,
		CultureVideoURL: r.CultureVideoURL,
	}
}
