package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/whitecarrot/careers-api/internal/application/dto"
	"github.com/whitecarrot/careers-api/internal/application/usecase"
	"github.com/whitecarrot/careers-api/internal/domain"
)

// PublicHandler maneja las peticiones anónimas de páginas publicadas.
type PublicHandler struct {
	uc *usecase.PublicPageUseCase
}

// NewPublicHandler construye el handler inyectando el caso de uso.
func NewPublicHandler(uc *usecase.PublicPageUseCase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

// GetCompany godoc
// @Summary      Página publicada de una empresa
// @Tags         public
// @Produce      json
// @Param        slug  path  string  true  "Slug de la empresa"
// @Success      200   {object}  dto.PublicCompanyEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/company/{slug} [get]
func (h *PublicHandler) GetCompany(c *fiber.Ctx) error {
	slug := c.Params("slug")
	out, err := h.uc.GetPublishedCompany(slug)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.PublicCompanyEnvelope{Company: out})
}

// GetJobs godoc
// @Summary      Vacantes de una empresa publicada
// @Tags         public
// @Produce      json
// @Param        slug      path   string  true   "Slug de la empresa"
// @Param        location  query  string  false  "Filtro por ubicación exacta"
// @Param        jobType   query  string  false  "Filtro por tipo exacto"
// @Param        q         query  string  false  "Substring sobre el título"
// @Success      200  {object}  dto.JobsEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/company/{slug}/jobs [get]
func (h *PublicHandler) GetJobs(c *fiber.Ctx) error {
	slug := c.Params("slug")
	filter := dto.JobFilterRequest{
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
		Query:    c.Query("q"),
	}
	out, err := h.uc.GetPublishedJobs(slug, filter)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
