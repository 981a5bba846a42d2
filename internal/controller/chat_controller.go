package controller

import (
	"errors"

	"account-plan-be/internal/dto"
	"account-plan-be/internal/pkg/serverutils"
	"account-plan-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatController struct {
	conversationService service.IConversationService
}

func NewChatController(conversationService service.IConversationService) IChatController {
	return &chatController{
		conversationService: conversationService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Get("/health", c.Health)

	h := r.Group("/chat/session")
	h.Post("", c.CreateSession)
	h.Get(":id", c.ShowSession)
	h.Delete(":id", c.DeleteSession)
}

// Chat runs one state machine transition. The response body is the flat
// wire contract: reply, mode, company, account_plan.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conversationService.HandleMessage(ctx.Context(), req.SessionId, req.Message, req.Persona)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.conversationService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatController) ShowSession(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.conversationService.GetSession(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.conversationService.DeleteSession(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}
