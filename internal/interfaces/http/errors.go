package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nisaworld/muebleria-api/internal/application/dto"
	"github.com/nisaworld/muebleria-api/pkg/logger"
)

// internalError registra el error con su detalle y responde un cuerpo
// genérico: el texto del SQL o del driver nunca llega al cliente.
func internalError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno del servidor",
	})
}
