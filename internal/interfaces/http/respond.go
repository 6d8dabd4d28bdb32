package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
)

// respondError traduce un error de dominio al sobre {success: false, error}.
// Validación → 400, no encontrado → 404; cualquier otro error se loguea con
// su causa real y sale como mensaje genérico para no filtrar detalles del
// driver.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUsuarioNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInvalidTable),
		errors.Is(err, domain.ErrNoFields),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no clasificado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno del servidor"))
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(msg))
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Fail(msg))
}
