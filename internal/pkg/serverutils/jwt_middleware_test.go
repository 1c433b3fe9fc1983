package serverutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cornell-notepad-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateApp(tokens *token.Service) *fiber.App {
	app := fiber.New()
	app.Get("/protected", JwtMiddleware(tokens), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"subject": SubjectId(ctx)})
	})
	return app
}

func gateRequest(t *testing.T, app *fiber.App, authorization string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJwtMiddlewareRejections(t *testing.T) {
	tokens := token.NewService("gate-secret", time.Hour)
	app := gateApp(tokens)

	expired, err := token.NewService("gate-secret", -time.Minute).Issue(uuid.New())
	require.NoError(t, err)
	foreign, err := token.NewService("other-secret", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		wantMessage   string
	}{
		{"missing header", "", "No token provided"},
		{"wrong scheme", "Basic abc123", "Invalid token"},
		{"garbage token", "Bearer not-a-jwt", "jwt malformed"},
		{"expired token", "Bearer " + expired, "jwt expired"},
		{"wrong signature", "Bearer " + foreign, "invalid signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := gateRequest(t, app, tt.authorization)
			assert.Equal(t, fiber.StatusUnauthorized, status)
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestJwtMiddlewarePassesSubject(t *testing.T) {
	tokens := token.NewService("gate-secret", time.Hour)
	app := gateApp(tokens)

	subject := uuid.New()
	tokenStr, err := tokens.Issue(subject)
	require.NoError(t, err)

	status, body := gateRequest(t, app, "Bearer "+tokenStr)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, subject.String(), body["subject"])
}
