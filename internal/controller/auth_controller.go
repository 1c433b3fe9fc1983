// FILE: internal/controller/auth_controller.go
package controller

import (
	"cornell-notepad-be/internal/dto"
	"cornell-notepad-be/internal/pkg/serverutils"
	"cornell-notepad-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SignUp(ctx *fiber.Ctx) error
	SignIn(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/sign-up", c.SignUp)
	h.Post("/sign-in", c.SignIn)
}

func (c *authController) SignUp(ctx *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SignUp(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success sign up", nil))
}

func (c *authController) SignIn(ctx *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SignIn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success sign in", res))
}
