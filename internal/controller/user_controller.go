package controller

import (
	"cornell-notepad-be/internal/dto"
	"cornell-notepad-be/internal/pkg/serverutils"
	"cornell-notepad-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authGate fiber.Handler)
	GetProfile(ctx *fiber.Ctx) error
	UpdateInfo(ctx *fiber.Ctx) error
	UpdatePassword(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router, authGate fiber.Handler) {
	h := r.Group("/user")
	h.Use(authGate)
	h.Get("", c.GetProfile)
	h.Put("/info", c.UpdateInfo)
	h.Put("/password", c.UpdatePassword)
	h.Delete("", c.Delete)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userId := serverutils.SubjectId(ctx)

	res, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user", res))
}

func (c *userController) UpdateInfo(ctx *fiber.Ctx) error {
	userId := serverutils.SubjectId(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.userService.UpdateProfile(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update user info", nil))
}

func (c *userController) UpdatePassword(ctx *fiber.Ctx) error {
	userId := serverutils.SubjectId(ctx)

	var req dto.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.userService.ChangePassword(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update user password", nil))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.SubjectId(ctx)

	if err := c.userService.DeleteAccount(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user", nil))
}
