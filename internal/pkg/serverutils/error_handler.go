package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/taranjotsinghW28/Note-Nest/internal/apperror"
	"github.com/taranjotsinghW28/Note-Nest/internal/pkg/logger"
)

// ErrorHandlerMiddleware is the single recovery point for expected failures:
// application errors become their declared status and message, fiber errors
// keep their code, and anything else is logged with its cause and masked as a
// generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Status, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error":  err.Error(),
			"path":   ctx.Path(),
			"method": ctx.Method(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
