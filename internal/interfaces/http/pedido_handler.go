package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/application/usecase"
	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
)

// PedidoHandler maneja las peticiones HTTP del flujo de pedidos y despachos.
type PedidoHandler struct {
	uc  *usecase.PedidoUseCase
	log *logger.Logger
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase, log *logger.Logger) *PedidoHandler {
	return &PedidoHandler{uc: uc, log: log}
}

// Crear POST /api/pedidos
func (h *PedidoHandler) Crear(c *fiber.Ctx) error {
	var req dto.CrearPedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo JSON inválido")
	}
	id, err := h.uc.Crear(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(fiber.Map{"id_pedido": id}, "pedido creado"))
}

// EnCurso GET /api/pedidos/en-curso
func (h *PedidoHandler) EnCurso(c *fiber.Ctx) error {
	list, err := h.uc.EnCurso(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(list))
}

// Historial GET /api/pedidos/historial?page=&per_page=&estado=
func (h *PedidoHandler) Historial(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)
	var estado *int
	if e := c.QueryInt("estado", 0); e > 0 {
		estado = &e
	}
	list, pag, err := h.uc.Historial(c.Context(), page, perPage, estado)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKPage(list, pag))
}

// Detalle GET /api/pedidos/:id/detalle
func (h *PedidoHandler) Detalle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id debe ser numérico")
	}
	lineas, err := h.uc.Detalle(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(lineas))
}

// Despachos GET /api/despachos?page=&per_page=
func (h *PedidoHandler) Despachos(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)
	list, pag, err := h.uc.Despachos(c.Context(), page, perPage)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKPage(list, pag))
}

// GuiaPDF GET /api/pedidos/:id/guia-pdf — descarga la guía de despacho.
func (h *PedidoHandler) GuiaPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id debe ser numérico")
	}
	pdfBytes, err := h.uc.GuiaPDF(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="guia_despacho_%d.pdf"`, id))
	return c.Send(pdfBytes)
}
