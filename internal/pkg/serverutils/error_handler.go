package serverutils

import (
	"errors"

	"cornell-notepad-be/internal/apperror"
	"cornell-notepad-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return fiber.StatusUnprocessableEntity
	case apperror.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindForbidden:
		return fiber.StatusForbidden
	case apperror.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware maps typed errors from the service layer to
// transport status codes. Infrastructure failures surface as a generic
// 500 and are logged with their cause; the cause never reaches the caller.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr := apperror.As(err); appErr != nil {
			status := statusForKind(appErr.Kind)
			if appErr.Kind == apperror.KindInternal {
				log.Error("http", "request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Unwrap(),
				})
				return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message))
			}
			body := ErrorBody{
				Success: false,
				Code:    status,
				Message: appErr.Message,
				Fields:  appErr.Fields,
				Ids:     appErr.Ids,
			}
			return ctx.Status(status).JSON(body)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
