package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/whitecarrot/careers-api/internal/application/dto"
	"github.com/whitecarrot/careers-api/internal/application/usecase"
	"github.com/whitecarrot/careers-api/internal/domain"
)

// RecruiterHandler maneja las operaciones autenticadas del editor de páginas.
// Todas pasan primero por AuthMiddleware; el ownership lo verifica el caso
// de uso en cada operación.
type RecruiterHandler struct {
	uc *usecase.RecruiterPageUseCase
}

// NewRecruiterHandler construye el handler inyectando el caso de uso.
func NewRecruiterHandler(uc *usecase.RecruiterPageUseCase) *RecruiterHandler {
	return &RecruiterHandler{uc: uc}
}

// GetCompany godoc
// @Summary      Empresa completa para edición (draft incluido)
// @Tags         recruiter
// @Security     BearerAuth
// @Produce      json
// @Param        slug  path  string  true  "Slug de la empresa"
// @Success      200   {object}  dto.CompanyEnvelope
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recruiter/company/{slug} [get]
func (h *RecruiterHandler) GetCompany(c *fiber.Ctx) error {
	out, err := h.uc.GetForEdit(GetUserID(c), c.Params("slug"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(dto.CompanyEnvelope{Company: out})
}

// UpdateCompany godoc
// @Summary      Actualizar theme, sections y culture_video_url
// @Tags         recruiter
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "Slug de la empresa"
// @Param        body  body  dto.UpdateCompanyPageRequest  true  "Patch de la página"
// @Success      200   {object}  dto.CompanyEnvelope
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recruiter/company/{slug} [put]
func (h *RecruiterHandler) UpdateCompany(c *fiber.Ctx) error {
	var in dto.UpdateCompanyPageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	patch, detail := in.Validate()
	if detail != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Error: detail})
	}
	out, err := h.uc.UpdatePage(GetUserID(c), c.Params("slug"), patch)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(dto.CompanyEnvelope{Company: out})
}

// Publish godoc
// @Summary      Publicar la página (idempotente)
// @Tags         recruiter
// @Security     BearerAuth
// @Produce      json
// @Param        slug  path  string  true  "Slug de la empresa"
// @Success      200   {object}  dto.CompanyEnvelope
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recruiter/company/{slug}/publish [post]
func (h *RecruiterHandler) Publish(c *fiber.Ctx) error {
	out, err := h.uc.Publish(GetUserID(c), c.Params("slug"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(dto.CompanyEnvelope{Company: out})
}

// Unpublish godoc
// @Summary      Despublicar la página (idempotente)
// @Tags         recruiter
// @Security     BearerAuth
// @Produce      json
// @Param        slug  path  string  true  "Slug de la empresa"
// @Success      200   {object}  dto.CompanyEnvelope
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recruiter/company/{slug}/unpublish [post]
func (h *RecruiterHandler) Unpublish(c *fiber.Ctx) error {
	out, err := h.uc.Unpublish(GetUserID(c), c.Params("slug"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(dto.CompanyEnvelope{Company: out})
}

// errorResponse traduce los errores de dominio al contrato HTTP: la denegación
// de ownership es 403 (sin ocultar la existencia del recurso en esta ruta).
func (h *RecruiterHandler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case err == domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Company not found"})
	case domain.IsOwnershipDenied(err):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Forbidden"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}
