package controller

import (
	"errors"

	"ai-lifecoach-be/internal/dto"
	"ai-lifecoach-be/internal/pkg/serverutils"
	"ai-lifecoach-be/internal/service"
	"ai-lifecoach-be/pkg/ingest"

	"github.com/gofiber/fiber/v2"
)

type IReflectionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Parse(ctx *fiber.Ctx) error
	Commit(ctx *fiber.Ctx) error
}

type reflectionController struct {
	reflectionService service.IReflectionService
}

func NewReflectionController(reflectionService service.IReflectionService) IReflectionController {
	return &reflectionController{
		reflectionService: reflectionService,
	}
}

func (c *reflectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reflection/v1")
	h.Get("", c.List)
	h.Post("parse", c.Parse)
	h.Post("commit", c.Commit)
}

func (c *reflectionController) List(ctx *fiber.Ctx) error {
	res, err := c.reflectionService.GetRecent(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).
			JSON(serverutils.ErrorResponse(fiber.StatusBadGateway, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list reflections", res))
}

func (c *reflectionController) Parse(ctx *fiber.Ctx) error {
	var req dto.ParseReflectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reflectionService.Parse(ctx.Context(), &req)
	if err != nil {
		// Malformed input halts before any remote call
		if errors.Is(err, ingest.ErrInvalidJSON) {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
		}
		return ctx.Status(fiber.StatusBadGateway).
			JSON(serverutils.ErrorResponse(fiber.StatusBadGateway, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success parse reflection", res))
}

func (c *reflectionController) Commit(ctx *fiber.Ctx) error {
	var req dto.CommitReflectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reflectionService.Commit(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			return ctx.Status(fiber.StatusNotFound).
				JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		// Remote rejection: earlier creates in this submission are kept,
		// the raw failure surfaces to the user.
		return ctx.Status(fiber.StatusBadGateway).
			JSON(serverutils.ErrorResponse(fiber.StatusBadGateway, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success commit reflection", res))
}
