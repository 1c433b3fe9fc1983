package bootstrap

import (
	"cornell-notepad-be/internal/config"
	"cornell-notepad-be/internal/controller"
	"cornell-notepad-be/internal/pkg/logger"
	"cornell-notepad-be/internal/pkg/serverutils"
	"cornell-notepad-be/internal/pkg/token"
	"cornell-notepad-be/internal/repository/unitofwork"
	"cornell-notepad-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	AuthController controller.IAuthController
	UserController controller.IUserController
	NoteController controller.INoteController

	AuthGate fiber.Handler
	Logger   logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokens := token.NewService(cfg.Auth.Secret, cfg.Auth.BearerExpiresIn)

	// 2. Services
	authService := service.NewAuthService(uowFactory, tokens, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	noteService := service.NewNoteService(uowFactory)

	// 3. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService),
		UserController: controller.NewUserController(userService),
		NoteController: controller.NewNoteController(noteService),

		AuthGate: serverutils.JwtMiddleware(tokens),
		Logger:   sysLogger,
	}
}
