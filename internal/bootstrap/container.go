package bootstrap

import (
	"ai-lifecoach-be/internal/config"
	"ai-lifecoach-be/internal/controller"
	"ai-lifecoach-be/internal/pkg/logger"
	"ai-lifecoach-be/internal/repository/implementation"
	"ai-lifecoach-be/internal/repository/memory"
	"ai-lifecoach-be/internal/service"

	"github.com/jomei/notionapi"
)

type Container struct {
	ReflectionController controller.IReflectionController
	ThemeController      controller.IThemeController

	Logger logger.ILogger
}

func NewContainer(client *notionapi.Client, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Repositories (all remote except the in-memory draft store)
	reflectionRepo := implementation.NewReflectionRepository(client, cfg.Notion.ReflectionDBId)
	themeRepo := implementation.NewThemeRepository(client, cfg.Notion.ThemeDBId)
	actionItemRepo := implementation.NewActionItemRepository(client, cfg.Notion.ActionItemDBId)
	readingRepo := implementation.NewReadingRepository(client, cfg.Notion.ReadingDBId)
	draftRepo := memory.NewDraftRepository()

	// 3. Services
	themeService := service.NewThemeService(themeRepo, sysLogger)
	reflectionService := service.NewReflectionService(
		reflectionRepo,
		actionItemRepo,
		readingRepo,
		draftRepo,
		themeService,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		ReflectionController: controller.NewReflectionController(reflectionService),
		ThemeController:      controller.NewThemeController(themeService),
		Logger:               sysLogger,
	}
}
