// pagectl edita y publica la página de carreras de una empresa desde la
// terminal: mantiene un borrador local en un archivo JSON y lo sincroniza
// con la API en guardados explícitos.
//
//	pagectl pull            descarga el borrador al archivo local
//	pagectl add -type perks añade una sección al borrador
//	pagectl remove -index 2 elimina una sección por posición
//	pagectl move -from 2 -to 0
//	pagectl set -index 0 -title "Sobre nosotros" -content "..."
//	pagectl video -url https://...
//	pagectl push            guarda el borrador completo en el servidor
//	pagectl publish | unpublish
//	pagectl view            imprime la página publicada
//
// El token del recruiter se pasa por RECRUITER_TOKEN; el slug se resuelve
// con -slug, o con el dominio de RECRUITER_EMAIL contra COMPANY_SLUG_MAP,
// o con COMPANY_SLUG.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/whitecarrot/careers-api/internal/domain/editor"
	"github.com/whitecarrot/careers-api/internal/domain/entity"
	"github.com/whitecarrot/careers-api/internal/domain/render"
	"github.com/whitecarrot/careers-api/pkg/apiclient"
	"github.com/whitecarrot/careers-api/pkg/config"
)

// draftFile representación en disco del borrador, misma forma que el payload
// de guardado para poder inspeccionarlo y editarlo a mano.
type draftFile struct {
	Theme           entity.Theme     `json:"theme"`
	Sections        []entity.Section `json:"sections"`
	CultureVideoURL string           `json:"culture_video_url"`
}

func main() {
	if len(os.Args) < 2 {
		fail("uso: pagectl <pull|add|remove|move|set|video|push|publish|unpublish|view> [flags]")
	}
	command := os.Args[1]

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	slug := flags.String("slug", "", "slug de la empresa (si no, se resuelve por email/config)")
	file := flags.String("file", "page.json", "archivo del borrador local")
	sectionType := flags.String("type", entity.SectionAbout, "tipo de sección (about|values|perks|culture|faq)")
	index := flags.Int("index", -1, "posición de la sección")
	from := flags.Int("from", -1, "posición de origen")
	to := flags.Int("to", -1, "posición de destino")
	title := flags.String("title", "", "título de la sección")
	content := flags.String("content", "", "contenido (líneas para perks)")
	videoURL := flags.String("url", "", "URL del video de cultura (vacío la elimina)")
	location := flags.String("location", "", "filtro de vacantes por ubicación")
	jobType := flags.String("job-type", "", "filtro de vacantes por tipo")
	query := flags.String("q", "", "búsqueda por título de vacante")
	if err := flags.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: " + err.Error())
	}
	resolvedSlug := *slug
	if resolvedSlug == "" {
		resolvedSlug = cfg.Client.ResolveSlug("")
	}
	if resolvedSlug == "" {
		fail("no se pudo resolver el slug de la empresa (usa -slug o configura COMPANY_SLUG / COMPANY_SLUG_MAP)")
	}

	client := apiclient.New(cfg.Client.APIBaseURL, nil)
	token := os.Getenv("RECRUITER_TOKEN")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch command {
	case "pull":
		company, err := client.CompanyForEdit(ctx, token, resolvedSlug)
		if err != nil {
			fail(err.Error())
		}
		draft := editor.NewDraft(company)
		writeDraft(*file, draft)
		fmt.Printf("borrador de %q escrito en %s (%d secciones, status %s)\n",
			company.Name, *file, len(draft.Sections), company.Status)

	case "add":
		draft := readDraft(*file)
		draft.AddSection(*sectionType)
		writeDraft(*file, draft)
		fmt.Printf("sección %s añadida (total %d)\n", *sectionType, len(draft.Sections))

	case "remove":
		draft := readDraft(*file)
		if *index < 0 || *index >= len(draft.Sections) {
			fail("-index fuera de rango")
		}
		draft.DeleteSection(*index)
		writeDraft(*file, draft)
		fmt.Printf("sección %d eliminada (quedan %d)\n", *index, len(draft.Sections))

	case "move":
		draft := readDraft(*file)
		draft.Move(*from, *to)
		writeDraft(*file, draft)
		fmt.Printf("sección movida de %d a %d\n", *from, *to)

	case "set":
		draft := readDraft(*file)
		if *index < 0 || *index >= len(draft.Sections) {
			fail("-index fuera de rango")
		}
		applySet(draft, *index, providedFlags(flags), *title, *content)
		writeDraft(*file, draft)
		fmt.Printf("sección %d actualizada\n", *index)

	case "video":
		draft := readDraft(*file)
		draft.CultureVideoURL = *videoURL
		writeDraft(*file, draft)
		fmt.Println("video de cultura actualizado en el borrador")

	case "push":
		draft := readDraft(*file)
		payload := draft.SavePayload()
		saved, err := client.SavePage(ctx, token, resolvedSlug, payload)
		if err != nil {
			fail(err.Error())
		}
		draft.ApplySaved(saved, payload)
		writeDraft(*file, draft)
		fmt.Println("página guardada")

	case "publish":
		company, err := client.Publish(ctx, token, resolvedSlug)
		if err != nil {
			fail(err.Error())
		}
		fmt.Printf("página de %q publicada (updated_at %s)\n", company.Name, company.UpdatedAt.Format(time.RFC3339))

	case "unpublish":
		company, err := client.Unpublish(ctx, token, resolvedSlug)
		if err != nil {
			fail(err.Error())
		}
		fmt.Printf("página de %q despublicada\n", company.Name)

	case "view":
		company, err := client.PublishedCompany(ctx, resolvedSlug)
		if err != nil {
			fail(err.Error())
		}
		jobs, err := client.PublishedJobs(ctx, resolvedSlug, apiclient.JobFilters{
			Location: *location,
			JobType:  *jobType,
			Query:    *query,
		})
		if err != nil {
			fail(err.Error())
		}
		printPage(render.BuildPage(company), render.BuildJobList(jobs))

	default:
		fail("comando desconocido: " + command)
	}
}

// providedFlags indica qué flags se pasaron explícitamente en la línea de
// comandos, para distinguir `-title ""` (vaciar el título) de no pasar -title.
func providedFlags(fs *flag.FlagSet) map[string]bool {
	out := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { out[f.Name] = true })
	return out
}

// applySet aplica el comando set: solo los flags pasados explícitamente
// tocan la sección, incluso cuando su valor es vacío.
func applySet(draft *editor.Draft, index int, provided map[string]bool, title, content string) {
	if provided["title"] {
		draft.EditSection(index, editor.SectionUpdate{Title: &title})
	}
	if provided["content"] {
		draft.SetContentText(index, content)
	}
}

// printPage imprime la página renderizada como texto plano.
func printPage(page render.PageView, jobs render.JobListView) {
	fmt.Printf("== %s (%s) ==\n", page.Name, page.Slug)
	fmt.Printf("theme: primary %s, accent %s\n", page.PrimaryColor, page.AccentColor)
	if page.CultureVideoURL != "" {
		fmt.Printf("video: %s\n", page.CultureVideoURL)
	}
	if !page.HasSections {
		fmt.Println("\n(sin secciones todavía)")
	}
	for _, s := range page.Sections {
		fmt.Printf("\n## %s [%s]\n", s.Title, s.Type)
		if s.Items != nil {
			for _, item := range s.Items {
				fmt.Println("  - " + item)
			}
			continue
		}
		if s.Paragraph != "" {
			fmt.Println(s.Paragraph)
		}
	}
	fmt.Println("\n== Vacantes ==")
	if jobs.Empty {
		fmt.Println("(sin vacantes publicadas)")
		return
	}
	for _, j := range jobs.Jobs {
		extras := []string{j.Location, j.JobType, j.WorkMode}
		fmt.Printf("- %s (%s)\n", j.Title, strings.Join(extras, ", "))
	}
}

func readDraft(path string) *editor.Draft {
	raw, err := os.ReadFile(path)
	if err != nil {
		fail("leer borrador (¿hiciste pull?): " + err.Error())
	}
	var df draftFile
	if err := json.Unmarshal(raw, &df); err != nil {
		fail("borrador corrupto: " + err.Error())
	}
	return &editor.Draft{
		Theme:           df.Theme,
		Sections:        df.Sections,
		CultureVideoURL: df.CultureVideoURL,
	}
}

func writeDraft(path string, draft *editor.Draft) {
	raw, err := json.MarshalIndent(draftFile{
		Theme:           draft.Theme,
		Sections:        draft.Sections,
		CultureVideoURL: draft.CultureVideoURL,
	}, "", "  ")
	if err != nil {
		fail("serializar borrador: " + err.Error())
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		fail("escribir borrador: " + err.Error())
	}
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
