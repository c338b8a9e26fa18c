// Package editor mantiene el borrador local de una página de carreras:
// una lista ordenada de secciones más theme y video, independiente del
// servidor hasta que se guarda explícitamente. El guardado envía el payload
// completo y el servidor lo reemplaza al por mayor (last save wins).
package editor

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/whitecarrot/careers-api/internal/domain/entity"
)

// Paleta por defecto con la que arranca todo borrador; el theme guardado
// de la empresa se superpone campo a campo.
const (
	DefaultPrimaryColor = "#0f172a"
	DefaultAccentColor  = "#f97316"
	DefaultFont         = "inter"
)

// Draft borrador en memoria de la página. Single-user, sin coordinación:
// diverge del registro almacenado hasta SavePayload.
type Draft struct {
	Theme           entity.Theme
	Sections        []entity.Section
	CultureVideoURL string // "" = sin video
}

// UpdatePayload cuerpo completo del guardado: {theme, sections, culture_video_url}.
type UpdatePayload struct {
	Theme           entity.Theme     `json:"theme"`
	Sections        []entity.Section `json:"sections"`
	CultureVideoURL string           `json:"culture_video_url"`
}

// SectionUpdate actualización parcial de una sección; los campos nil no se tocan.
type SectionUpdate struct {
	Type    *string
	Title   *string
	Content *entity.SectionContent
}

// NewDraft crea el borrador a partir del registro del servidor: paleta por
// defecto superpuesta con el theme guardado, secciones copiadas tal cual.
func NewDraft(company *entity.Company) *Draft {
	d := &Draft{
		Theme: entity.Theme{
			PrimaryColor: DefaultPrimaryColor,
			AccentColor:  DefaultAccentColor,
			Font:         DefaultFont,
		},
	}
	if company == nil {
		return d
	}
	overlayTheme(&d.Theme, company.Theme)
	d.Sections = append([]entity.Section(nil), company.Sections...)
	if company.CultureVideoURL != nil {
		d.CultureVideoURL = *company.CultureVideoURL
	}
	return d
}

func overlayTheme(dst *entity.Theme, src entity.Theme) {
	if src.PrimaryColor != "" {
		dst.PrimaryColor = src.PrimaryColor
	}
	if src.AccentColor != "" {
		dst.AccentColor = src.AccentColor
	}
	if src.LogoURL != "" {
		dst.LogoURL = src.LogoURL
	}
	if src.BannerURL != "" {
		dst.BannerURL = src.BannerURL
	}
	if src.Font != "" {
		dst.Font = src.Font
	}
	for key, value := range src.Extra {
		if dst.Extra == nil {
			dst.Extra = map[string]json.RawMessage{}
		}
		dst.Extra[key] = value
	}
}

// AddSection añade al final una sección nueva del tipo dado: id único
// recién generado, título vacío, contenido vacío acorde al tipo (lista para
// enumerables, string para el resto) y order = longitud actual + 1.
func (d *Draft) AddSection(sectionType string) {
	content := entity.TextContent("")
	if entity.IsListSectionType(sectionType) {
		content = entity.ListContent([]string{})
	}
	d.Sections = append(d.Sections, entity.Section{
		ID:      sectionType + "-" + uuid.New().String(),
		Type:    sectionType,
		Title:   "",
		Content: content,
		Order:   len(d.Sections) + 1,
	})
}

// DeleteSection elimina por posición. No renumera: los order densos se
// recalculan en el guardado, no en cada edición local.
func (d *Draft) DeleteSection(index int) {
	if index < 0 || index >= len(d.Sections) {
		return
	}
	d.Sections = append(d.Sections[:index], d.Sections[index+1:]...)
}

// Move desplaza una sección a otra posición de la lista. No-op si origen y
// destino coinciden o alguno está fuera de rango.
func (d *Draft) Move(from, to int) {
	n := len(d.Sections)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return
	}
	moved := d.Sections[from]
	rest := append(append([]entity.Section(nil), d.Sections[:from]...), d.Sections[from+1:]...)
	d.Sections = append(append(append([]entity.Section(nil), rest[:to]...), moved), rest[to:]...)
}

// EditSection mezcla una actualización parcial sobre la sección en la posición dada.
func (d *Draft) EditSection(index int, update SectionUpdate) {
	if index < 0 || index >= len(d.Sections) {
		return
	}
	s := &d.Sections[index]
	if update.Type != nil {
		s.Type = *update.Type
	}
	if update.Title != nil {
		s.Title = *update.Title
	}
	if update.Content != nil {
		s.Content = *update.Content
	}
}

// SetContentText fija el contenido de una sección desde texto editado:
// para tipos enumerables el texto se separa por líneas, se recortan espacios
// y se descartan las vacías; para el resto se guarda el string literal.
func (d *Draft) SetContentText(index int, text string) {
	if index < 0 || index >= len(d.Sections) {
		return
	}
	s := &d.Sections[index]
	if !entity.IsListSectionType(s.Type) {
		s.Content = entity.TextContent(text)
		return
	}
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	s.Content = entity.ListContent(items)
}

// ContentText devuelve el contenido como texto editable: las listas se unen
// por saltos de línea, los strings van tal cual.
func (d *Draft) ContentText(index int) string {
	if index < 0 || index >= len(d.Sections) {
		return ""
	}
	content := d.Sections[index].Content
	if content.IsList() {
		return strings.Join(content.Items(), "\n")
	}
	return content.Text()
}

// SavePayload recalcula el order de cada sección como su posición actual
// (denso, base 1) y produce el cuerpo completo del guardado.
func (d *Draft) SavePayload() UpdatePayload {
	sections := make([]entity.Section, len(d.Sections))
	for i, s := range d.Sections {
		s.Order = i + 1
		sections[i] = s
	}
	return UpdatePayload{
		Theme:           d.Theme,
		Sections:        sections,
		CultureVideoURL: d.CultureVideoURL,
	}
}

// ApplySaved reemplaza el estado local por completo con lo que devolvió el
// servidor, como si fuera un pull fresco: un campo que el servidor devuelve
// vacío cae al valor por defecto, nunca al valor local previo. Si la
// respuesta no trae una empresa utilizable, el reemplazo usa el payload
// calculado localmente.
func (d *Draft) ApplySaved(saved *entity.Company, sent UpdatePayload) {
	if saved != nil {
		*d = *NewDraft(saved)
		return
	}
	fresh := NewDraft(nil)
	overlayTheme(&fresh.Theme, sent.Theme)
	fresh.Sections = sent.Sections
	fresh.CultureVideoURL = sent.CultureVideoURL
	*d = *fresh
}
