package controller

import (
	"ai-tickettriage-be/internal/dto"
	"ai-tickettriage-be/internal/pkg/serverutils"
	"ai-tickettriage-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITriageController interface {
	RegisterRoutes(r fiber.Router)
	Classify(ctx *fiber.Ctx) error
	DraftReply(ctx *fiber.Ctx) error
	SimpleReply(ctx *fiber.Ctx) error
}

type triageController struct {
	triageService service.ITriageService
}

func NewTriageController(triageService service.ITriageService) ITriageController {
	return &triageController{
		triageService: triageService,
	}
}

func (c *triageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/triage/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("classify", c.Classify)
	h.Post("reply", c.DraftReply)
	h.Post("simple-reply", c.SimpleReply)
}

func (c *triageController) Classify(ctx *fiber.Ctx) error {
	var req dto.ClassifyTicketRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.triageService.Classify(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success classify ticket", res))
}

func (c *triageController) DraftReply(ctx *fiber.Ctx) error {
	var req dto.DraftReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.triageService.DraftReply(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success draft reply", res))
}

func (c *triageController) SimpleReply(ctx *fiber.Ctx) error {
	var req dto.SimpleReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.triageService.SimpleReply(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success draft simple reply", res))
}
