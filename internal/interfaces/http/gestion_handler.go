package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/application/usecase"
	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
)

// GestionHandler maneja el CRUD genérico de tablas de referencia. El nombre
// de tabla viene en la ruta y se valida contra la lista blanca del
// repositorio.
type GestionHandler struct {
	uc  *usecase.GestionUseCase
	log *logger.Logger
}

// NewGestionHandler construye el handler.
func NewGestionHandler(uc *usecase.GestionUseCase, log *logger.Logger) *GestionHandler {
	return &GestionHandler{uc: uc, log: log}
}

// List GET /api/gestion/:tabla
func (h *GestionHandler) List(c *fiber.Ctx) error {
	filas, err := h.uc.List(c.Context(), c.Params("tabla"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(filas))
}

// Insert POST /api/gestion/:tabla
func (h *GestionHandler) Insert(c *fiber.Ctx) error {
	var datos map[string]any
	if err := c.BodyParser(&datos); err != nil {
		return badRequest(c, "cuerpo JSON inválido")
	}
	fila, err := h.uc.Insert(c.Context(), c.Params("tabla"), datos)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(fila, "fila creada"))
}

// Delete DELETE /api/gestion/:tabla/:id
func (h *GestionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id debe ser numérico")
	}
	if err := h.uc.Delete(c.Context(), c.Params("tabla"), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKMessage(fiber.Map{"id": id}, "fila eliminada"))
}

// Opciones GET /api/opciones-combos — las seis listas id/nombre para poblar
// los combos del formulario de ingreso.
func (h *GestionHandler) Opciones(c *fiber.Ctx) error {
	combos, err := h.uc.Opciones(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(combos))
}
