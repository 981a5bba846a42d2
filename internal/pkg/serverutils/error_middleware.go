package serverutils

import (
	"errors"

	"account-plan-be/pkg/planner"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors escaping the handlers into JSON
// error envelopes. Session state is never committed by the time an error
// propagates here, so a retry starts from the last valid state.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		// Unparseable LLM output is a retryable upstream fault, not a crash.
		if errors.Is(err, planner.ErrUnparseable) {
			return ctx.Status(fiber.StatusBadGateway).JSON(
				ErrorResponse(fiber.StatusBadGateway, "LLM response unparseable, please retry"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(
			ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
