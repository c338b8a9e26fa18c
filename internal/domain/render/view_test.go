package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitecarrot/careers-api/internal/domain/entity"
	"github.com/whitecarrot/careers-api/internal/domain/render"
)

func TestBuildPage_ColoresConRespaldo(t *testing.T) {
	view := render.BuildPage(&entity.Company{Name: "Acme", Slug: "acme"})
	assert.Equal(t, render.FallbackPrimaryColor, view.PrimaryColor)
	assert.Equal(t, render.FallbackAccentColor, view.AccentColor)
	assert.False(t, view.HasSections)

	view = render.BuildPage(&entity.Company{
		Theme: entity.Theme{PrimaryColor: "#111827", AccentColor: "#22c55e", Font: "roboto"},
	})
	assert.Equal(t, "#111827", view.PrimaryColor)
	assert.Equal(t, "#22c55e", view.AccentColor)
	assert.Equal(t, "roboto", view.Font)
}

// Las secciones se presentan por order ascendente; las que no traen order
// cuentan como 0 y quedan primero en orden estable.
func TestBuildPage_OrdenaSeccionesEstablemente(t *testing.T) {
	company := &entity.Company{
		Sections: []entity.Section{
			{ID: "b", Type: entity.SectionValues, Order: 2},
			{ID: "sin-order-1", Type: entity.SectionAbout},
			{ID: "a", Type: entity.SectionFAQ, Order: 1},
			{ID: "sin-order-2", Type: entity.SectionCulture},
		},
	}
	view := render.BuildPage(company)
	require.Len(t, view.Sections, 4)
	assert.Equal(t, "sin-order-1", view.Sections[0].ID)
	assert.Equal(t, "sin-order-2", view.Sections[1].ID, "empates conservan el orden relativo")
	assert.Equal(t, "a", view.Sections[2].ID)
	assert.Equal(t, "b", view.Sections[3].ID)
	assert.True(t, view.HasSections)
	// El slice original no se reordena.
	assert.Equal(t, "b", company.Sections[0].ID)
}

func TestBuildPage_TituloYVariantesDeContenido(t *testing.T) {
	view := render.BuildPage(&entity.Company{
		Sections: []entity.Section{
			{ID: "1", Type: entity.SectionAbout, Title: "", Content: entity.TextContent("Hola"), Order: 1},
			{ID: "2", Type: entity.SectionPerks, Title: "Beneficios", Content: entity.ListContent([]string{"Remote"}), Order: 2},
		},
	})
	require.Len(t, view.Sections, 2)
	assert.Equal(t, "about", view.Sections[0].Title, "sin título cae al tipo")
	assert.Equal(t, "Hola", view.Sections[0].Paragraph)
	assert.Empty(t, view.Sections[0].Items)
	assert.Equal(t, "Beneficios", view.Sections[1].Title)
	assert.Equal(t, []string{"Remote"}, view.Sections[1].Items)
	assert.Empty(t, view.Sections[1].Paragraph)
}

func TestBuildPage_EmpresaNil(t *testing.T) {
	view := render.BuildPage(nil)
	assert.Equal(t, render.FallbackPrimaryColor, view.PrimaryColor)
	assert.False(t, view.HasSections)
}

func TestBuildJobList_PreservaOrdenYMarcaVacio(t *testing.T) {
	jobs := []entity.Job{{ID: "j2", Title: "Backend"}, {ID: "j1", Title: "Frontend"}}
	view := render.BuildJobList(jobs)
	assert.False(t, view.Empty)
	assert.Equal(t, "j2", view.Jobs[0].ID, "el orden del servidor se respeta tal cual")

	assert.True(t, render.BuildJobList(nil).Empty)
}
