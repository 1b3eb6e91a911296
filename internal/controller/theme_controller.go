package controller

import (
	"ai-lifecoach-be/internal/pkg/serverutils"
	"ai-lifecoach-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IThemeController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
}

type themeController struct {
	themeService service.IThemeService
}

func NewThemeController(themeService service.IThemeService) IThemeController {
	return &themeController{
		themeService: themeService,
	}
}

func (c *themeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/theme/v1")
	h.Get("", c.GetAll)
}

// GetAll feeds the multi-select widget on the confirmation screen.
func (c *themeController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.themeService.GetAll(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).
			JSON(serverutils.ErrorResponse(fiber.StatusBadGateway, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list themes", res))
}
