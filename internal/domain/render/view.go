// Package render construye el modelo de vista de una página de carreras
// publicada: presentación pura, sin acceso a datos.
package render

import (
	"sort"

	"github.com/whitecarrot/careers-api/internal/domain/entity"
)

// Colores de respaldo cuando el theme no los define.
const (
	FallbackPrimaryColor = "#0f172a"
	FallbackAccentColor  = "#f97316"
)

// PageView página lista para presentar: theme con respaldos aplicados y
// secciones ordenadas.
type PageView struct {
	Name            string
	Slug            string
	PrimaryColor    string
	AccentColor     string
	LogoURL         string
	BannerURL       string
	Font            string
	Sections        []SectionView
	HasSections     bool
	CultureVideoURL string
}

// SectionView sección lista para presentar. Paragraph y Items son
// excluyentes según la variante del contenido.
type SectionView struct {
	ID        string
	Type      string
	Title     string
	Paragraph string
	Items     []string
}

// JobListView listado de vacantes en el orden que entregó el servidor.
type JobListView struct {
	Jobs  []entity.Job
	Empty bool
}

// BuildPage proyecta la empresa al modelo de vista: colores con respaldo,
// secciones ordenadas por order ascendente (ausente cuenta como 0) y título
// cayendo al tipo cuando está vacío.
func BuildPage(company *entity.Company) PageView {
	view := PageView{
		PrimaryColor: FallbackPrimaryColor,
		AccentColor:  FallbackAccentColor,
	}
	if company == nil {
		return view
	}
	view.Name = company.Name
	view.Slug = company.Slug
	if company.Theme.PrimaryColor != "" {
		view.PrimaryColor = company.Theme.PrimaryColor
	}
	if company.Theme.AccentColor != "" {
		view.AccentColor = company.Theme.AccentColor
	}
	view.LogoURL = company.Theme.LogoURL
	view.BannerURL = company.Theme.BannerURL
	view.Font = company.Theme.Font
	if company.CultureVideoURL != nil {
		view.CultureVideoURL = *company.CultureVideoURL
	}

	sections := append([]entity.Section(nil), company.Sections...)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	for _, s := range sections {
		sv := SectionView{
			ID:    s.ID,
			Type:  s.Type,
			Title: s.DisplayTitle(),
		}
		if s.Content.IsList() {
			sv.Items = s.Content.Items()
		} else {
			sv.Paragraph = s.Content.Text()
		}
		view.Sections = append(view.Sections, sv)
	}
	view.HasSections = len(view.Sections) > 0
	return view
}

// BuildJobList envuelve las vacantes preservando el orden recibido y
// marcando el estado vacío explícito.
func BuildJobList(jobs []entity.Job) JobListView {
	return JobListView{Jobs: jobs, Empty: len(jobs) == 0}
}
