package setup

import (
	"errors"
	"kartvizid/services"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewFiberApp creates and configures a new Fiber application
func NewFiberApp(production bool, logger *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: production,
		ErrorHandler:          CustomErrorHandler(logger),
		ReadBufferSize:        8192,
		BodyLimit:             1 << 20,
	})
}

// CustomErrorHandler returns a custom error handler for Fiber
func CustomErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		reason := "Internal server error"
		message := services.MsgGeneric

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			reason = fe.Message
			if code == fiber.StatusNotFound {
				message = services.MsgNotFound
			}
		}

		requestID, _ := c.Locals("requestID").(string)

		level := slog.LevelError
		if code < 500 {
			level = slog.LevelWarn
		}
		logger.Log(c.Context(), level, "request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      reason,
			"message":    message,
			"request_id": requestID,
		})
	}
}
