package handlers

import (
	"errors"
	"kartvizid/services"
	"kartvizid/validator"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestID").(string)
	return id
}

// failure writes the error body shared by every endpoint: a machine readable
// reason and the Turkish sentence the client shows to the user
func failure(c *fiber.Ctx, status int, reason, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":      reason,
		"message":    message,
		"request_id": requestID(c),
	})
}

func badRequest(c *fiber.Ctx, reason string) error {
	return failure(c, fiber.StatusBadRequest, reason, services.MsgValidation)
}

func validationError(c *fiber.Ctx, err error) error {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":      "validation failed",
		"message":    services.MsgValidation,
		"fields":     fields,
		"request_id": requestID(c),
	})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return failure(c, fiber.StatusInternalServerError, message, services.UserMessage(err))
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrUnauthorized, fiber.StatusUnauthorized},
	{services.ErrNotEmployer, fiber.StatusForbidden},
	{services.ErrForbidden, fiber.StatusForbidden},
	{services.ErrOwnCV, fiber.StatusBadRequest},
	{services.ErrCompanyRequired, fiber.StatusPreconditionFailed},
	{services.ErrDuplicateRequest, fiber.StatusConflict},
	{services.ErrAlreadyApproved, fiber.StatusConflict},
	{services.ErrRequestNotPending, fiber.StatusConflict},
	{services.ErrProfileNotFound, fiber.StatusNotFound},
	{services.ErrCVNotFound, fiber.StatusNotFound},
	{services.ErrCompanyNotFound, fiber.StatusNotFound},
	{services.ErrRequestNotFound, fiber.StatusNotFound},
	{services.ErrNotificationNotFound, fiber.StatusNotFound},
}

// serviceError maps a service error to its HTTP status. Anything unknown is
// logged and reported as a server error.
func serviceError(c *fiber.Ctx, action string, err error) error {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return failure(c, e.status, err.Error(), services.UserMessage(err))
		}
	}
	return serverErrorWithDetails(c, action, err)
}
