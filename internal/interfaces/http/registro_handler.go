package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/application/usecase"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
)

// RegistroHandler maneja las peticiones HTTP del inventario de bobinas.
type RegistroHandler struct {
	uc  *usecase.RegistroUseCase
	log *logger.Logger
}

// NewRegistroHandler construye el handler.
func NewRegistroHandler(uc *usecase.RegistroUseCase, log *logger.Logger) *RegistroHandler {
	return &RegistroHandler{uc: uc, log: log}
}

// List GET /api/registros?page=&per_page=&search=&estado=
func (h *RegistroHandler) List(c *fiber.Ctx) error {
	filter := repository.RegistroFilter{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 10),
		Search:  c.Query("search"),
	}
	if estado := c.QueryInt("estado", 0); estado > 0 {
		filter.Estado = &estado
	}

	list, pag, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKPage(list, pag))
}

// GetByID GET /api/registros/:id
func (h *RegistroHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id debe ser numérico")
	}
	reg, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if reg == nil {
		return notFound(c, "registro no encontrado")
	}
	return c.JSON(dto.OK(reg))
}

// Create POST /api/registros
func (h *RegistroHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo JSON inválido")
	}
	reg, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(reg, "registro creado"))
}

// Update PUT /api/registros/:id — parche parcial: solo cambian los campos
// presentes en el cuerpo.
func (h *RegistroHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id debe ser numérico")
	}
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, "cuerpo JSON inválido")
	}
	if err := h.uc.UpdatePartial(c.Context(), id, fields); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKMessage(fiber.Map{"id_registro": id}, "registro actualizado"))
}

// ActualizarEstado PUT /api/registros/actualizar-estado — cambio de estado
// masivo sobre una lista de ids.
func (h *RegistroHandler) ActualizarEstado(c *fiber.Ctx) error {
	var req dto.ActualizarEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo JSON inválido")
	}
	afectados, err := h.uc.ActualizarEstado(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKMessage(fiber.Map{"registros_actualizados": afectados}, "estado actualizado"))
}
