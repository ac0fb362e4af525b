package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors escaping a handler into the wire
// error shape. Handlers map their own domain errors; this is the last resort
// so an unhandled failure never crashes the request flow.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}

		return ctx.Status(code).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
}
