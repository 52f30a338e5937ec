package bootstrap

import (
	"gorm.io/gorm"

	"github.com/taranjotsinghW28/Note-Nest/internal/config"
	"github.com/taranjotsinghW28/Note-Nest/internal/controller"
	"github.com/taranjotsinghW28/Note-Nest/internal/pkg/logger"
	"github.com/taranjotsinghW28/Note-Nest/internal/pkg/serverutils"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/memory"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/unitofwork"
	"github.com/taranjotsinghW28/Note-Nest/internal/service"

	"github.com/gofiber/fiber/v2"
)

type Container struct {
	AuthController controller.IAuthController
	NoteController controller.INoteController
	TagController  controller.ITagController

	AuthMiddleware fiber.Handler
	Logger         logger.ILogger
}

// NewContainer wires every dependency explicitly: the persistence handle and
// the identity middleware are passed into services and controllers at
// construction, never reached through globals.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	attempts := memory.NewAttemptRepository(cfg.Auth.AttemptWindow)

	authService := service.NewAuthService(uowFactory, attempts, cfg.Auth, sysLogger)
	noteService := service.NewNoteService(uowFactory)
	tagService := service.NewTagService(uowFactory)

	return &Container{
		AuthController: controller.NewAuthController(authService),
		NoteController: controller.NewNoteController(noteService),
		TagController:  controller.NewTagController(tagService),

		AuthMiddleware: serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret),
		Logger:         sysLogger,
	}
}
