package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appdir "github.com/Diego-69/taller-aplicaciones/internal/application/directory"
	"github.com/Diego-69/taller-aplicaciones/internal/application/dto"
	"github.com/Diego-69/taller-aplicaciones/internal/domain"
)

// DirectoryHandler expone el directorio de trabajadores y la ficha propia.
type DirectoryHandler struct {
	uc *appdir.DirectoryUseCase
}

// NewDirectoryHandler construye el handler del directorio.
func NewDirectoryHandler(uc *appdir.DirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// List godoc
// @Summary      Directorio de trabajadores activos
// @Tags         trabajadores
// @Produce      json
// @Param        sexo             query  string  false  "Masculino | Femenino"
// @Param        cargo            query  string  false  "substring del cargo, case-insensitive"
// @Param        area_id          query  int     false  "id de área"
// @Param        departamento_id  query  int     false  "id de departamento"
// @Success      200  {array}   dto.WorkerSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/trabajadores [get]
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	var f dto.DirectoryFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}

	out, err := h.uc.ListDirectory(c.Context(), SessionFromCtx(c), f)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// OwnRecord godoc
// @Summary      Ficha propia del trabajador autenticado
// @Tags         trabajadores
// @Produce      json
// @Success      200  {object}  dto.WorkerDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/me [get]
func (h *DirectoryHandler) OwnRecord(c *fiber.Ctx) error {
	out, err := h.uc.GetOwnRecord(c.Context(), SessionFromCtx(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// OwnFichaPDF godoc
// @Summary      Ficha propia en PDF
// @Tags         trabajadores
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/me/ficha.pdf [get]
func (h *DirectoryHandler) OwnFichaPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.OwnFichaPDF(c.Context(), SessionFromCtx(c))
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ficha.pdf"`)
	return c.Send(pdf)
}

// ListAreas godoc
// @Summary      Áreas organizacionales
// @Tags         organizacion
// @Produce      json
// @Success      200  {array}  dto.AreaResponse
// @Router       /api/areas [get]
func (h *DirectoryHandler) ListAreas(c *fiber.Ctx) error {
	out, err := h.uc.ListAreas(c.Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ListDepartamentos godoc
// @Summary      Departamentos, opcionalmente por área
// @Tags         organizacion
// @Produce      json
// @Param        area_id  query  int  false  "id de área; 0 = todos"
// @Success      200  {array}  dto.DepartamentoResponse
// @Router       /api/departamentos [get]
func (h *DirectoryHandler) ListDepartamentos(c *fiber.Ctx) error {
	areaID := c.QueryInt("area_id", 0)
	out, err := h.uc.ListDepartamentos(c.Context(), areaID)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

func (h *DirectoryHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol de la sesión no permite esta operación"})
	case errors.Is(err, domain.ErrNoLinkedRecord):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_LINKED_RECORD", Message: "el usuario no está asociado a ningún trabajador"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ficha no encontrada"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "servicio no disponible, intente más tarde"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
