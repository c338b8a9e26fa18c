package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/whitecarrot/careers-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PublicUC    *usecase.PublicPageUseCase
	RecruiterUC *usecase.RecruiterPageUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ruta pública (anónima, solo páginas publicadas)
	public := api.Group("/public")
	publicHandler := NewPublicHandler(deps.PublicUC)
	public.Get("/company/:slug", publicHandler.GetCompany)
	public.Get("/company/:slug/jobs", publicHandler.GetJobs)

	// Ruta de recruiter (requiere Bearer Token; ownership por operación)
	recruiter := api.Group("/recruiter", AuthMiddleware(deps.JWTSecret))
	recruiterHandler := NewRecruiterHandler(deps.RecruiterUC)
	recruiter.Get("/company/:slug", recruiterHandler.GetCompany)
	recruiter.Put("/company/:slug", recruiterHandler.UpdateCompany)
	recruiter.Post("/company/:slug/publish", recruiterHandler.Publish)
	recruiter.Post("/company/:slug/unpublish", recruiterHandler.Unpublish)
}
