// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"errors"
	"strings"

	"cornell-notepad-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const subjectIdKey = "subject_id"

// JwtMiddleware builds the authentication gate. Every failure is a 401;
// the message distinguishes the cause and is part of the API contract.
func JwtMiddleware(tokens *token.Service) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "No token provided"))
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}
		tokenStr := authHeader[len("Bearer "):]

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			message := "Invalid token"
			switch {
			case errors.Is(err, token.ErrMalformed):
				message = "jwt malformed"
			case errors.Is(err, token.ErrExpired):
				message = "jwt expired"
			case errors.Is(err, token.ErrInvalidSignature):
				message = "invalid signature"
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, message))
		}

		ctx.Locals(subjectIdKey, claims.SubjectId)
		return ctx.Next()
	}
}

// SubjectId returns the authenticated identity stored by JwtMiddleware.
func SubjectId(ctx *fiber.Ctx) uuid.UUID {
	id, _ := ctx.Locals(subjectIdKey).(uuid.UUID)
	return id
}
