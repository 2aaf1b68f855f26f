package controller

import (
	"ai-tickettriage-be/internal/dto"
	"ai-tickettriage-be/internal/pkg/serverutils"
	"ai-tickettriage-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	AddEntry(ctx *fiber.Ctx) error
	IngestEntries(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("entries", c.AddEntry)
	h.Post("entries/ingest", c.IngestEntries)
	h.Get("entries", c.List)
}

func (c *knowledgeController) AddEntry(ctx *fiber.Ctx) error {
	var req dto.AddKnowledgeEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.AddEntry(ctx.Context(), &req)
	if err != nil {
		return err
	}

	if !res.Created {
		return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("Entry already exists", res))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add knowledge entry", res))
}

func (c *knowledgeController) IngestEntries(ctx *fiber.Ctx) error {
	var req dto.IngestKnowledgeEntriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.IngestEntries(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Entries queued for ingestion", res))
}

func (c *knowledgeController) List(ctx *fiber.Ctx) error {
	var req dto.ListKnowledgeEntriesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.knowledgeService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list knowledge entries", res))
}
