package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/taranjotsinghW28/Note-Nest/internal/dto"
	"github.com/taranjotsinghW28/Note-Nest/internal/pkg/serverutils"
	"github.com/taranjotsinghW28/Note-Nest/internal/service"
)

type ITagController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	AddToNote(ctx *fiber.Ctx) error
	RemoveFromNote(ctx *fiber.Ctx) error
}

type tagController struct {
	tagService service.ITagService
}

func NewTagController(tagService service.ITagService) ITagController {
	return &tagController{
		tagService: tagService,
	}
}

func (c *tagController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	t := r.Group("/tag/v1")
	t.Use(auth)
	t.Get("", c.List)

	// Tag mutations live under the note they attach to.
	n := r.Group("/note/v1")
	n.Use(auth)
	n.Post(":id/tags", c.AddToNote)
	n.Delete(":id/tags/:tagId", c.RemoveFromNote)
}

func (c *tagController) List(ctx *fiber.Ctx) error {
	res, err := c.tagService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tags", res))
}

func (c *tagController) AddToNote(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}

	noteId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}

	var req dto.AddTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.NoteId = noteId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tagService.AddToNote(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Tag added successfully", res))
}

func (c *tagController) RemoveFromNote(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserId(ctx)
	if err != nil {
		return err
	}

	noteId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}
	tagId, err := uuid.Parse(ctx.Params("tagId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tag id")
	}

	res, err := c.tagService.RemoveFromNote(ctx.Context(), userId, noteId, tagId)
	if err != nil {
		return err
	}

	message := "Tag removed successfully"
	if !res.Removed {
		message = "Tag not found on this note"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}
