package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/application/usecase"
	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
)

// UsuarioHandler maneja el directorio de usuarios y la sincronización de
// identidades externas.
type UsuarioHandler struct {
	uc  *usecase.UsuarioUseCase
	log *logger.Logger
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase, log *logger.Logger) *UsuarioHandler {
	return &UsuarioHandler{uc: uc, log: log}
}

// List GET /api/usuarios
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(list))
}

// GetByID GET /api/usuarios/:id
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id debe ser numérico")
	}
	u, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if u == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(dto.OK(u))
}

// GetByAzureID GET /api/usuarios/azure/:azureId — consulta por identidad
// externa, usada por el frontend antes de sincronizar.
func (h *UsuarioHandler) GetByAzureID(c *fiber.Ctx) error {
	azureID := c.Params("azureId")
	if azureID == "" {
		return badRequest(c, "azureId es requerido")
	}
	u, err := h.uc.GetByAzureID(c.Context(), azureID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if u == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(dto.OK(u))
}

// Sincronizar POST /api/usuarios/sincronizar — upsert por azure_object_id:
// 200 si el usuario ya existía, 201 si hubo alta.
func (h *UsuarioHandler) Sincronizar(c *fiber.Ctx) error {
	var req dto.SincronizarUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo JSON inválido")
	}
	u, creado, err := h.uc.Sincronizar(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	status := fiber.StatusOK
	msg := "usuario sincronizado"
	if creado {
		status = fiber.StatusCreated
		msg = "usuario creado"
	}
	return c.Status(status).JSON(dto.OKMessage(u, msg))
}

// ActualizarRol PUT /api/usuarios/:id/rol
func (h *UsuarioHandler) ActualizarRol(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id debe ser numérico")
	}
	var req dto.ActualizarRolRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo JSON inválido")
	}
	if err := h.uc.ActualizarRol(c.Context(), id, req); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKMessage(fiber.Map{"id_usuario": id, "rol": req.Rol}, "rol actualizado"))
}
