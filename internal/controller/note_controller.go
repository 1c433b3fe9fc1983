package controller

import (
	"cornell-notepad-be/internal/dto"
	"cornell-notepad-be/internal/pkg/serverutils"
	"cornell-notepad-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, authGate fiber.Handler)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, authGate fiber.Handler) {
	h := r.Group("/notes")
	h.Use(authGate)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Delete("", c.Delete)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := serverutils.SubjectId(ctx)

	var query dto.ListNotesQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.noteService.List(ctx.Context(), userId, &query)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.SubjectId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.SubjectId(ctx)

	var notes []dto.NoteNew
	if err := ctx.BodyParser(&notes); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(notes) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one note is required")
	}
	for _, n := range notes {
		if err := serverutils.ValidateRequest(n); err != nil {
			return err
		}
	}

	res, err := c.noteService.CreateAll(ctx.Context(), userId, notes)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create notes", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.SubjectId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}

	var req dto.NoteNew
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.Update(ctx.Context(), userId, id, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update note", nil))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.SubjectId(ctx)

	var query dto.DeleteNotesQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	ids := make([]uuid.UUID, len(query.Ids))
	for i, raw := range query.Ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
		}
		ids[i] = id
	}

	if err := c.noteService.DeleteAll(ctx.Context(), userId, ids); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete notes", nil))
}
