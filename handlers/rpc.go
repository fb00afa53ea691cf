package handlers

import (
	"kartvizid/app"
	"kartvizid/middleware"
	"kartvizid/models"

	"github.com/gofiber/fiber/v2"
)

// CreateContactRequestRPC sends a contact request for a CV
func CreateContactRequestRPC(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateContactRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		request, err := a.Contacts.Create(middleware.GetUserID(c), req)
		if err != nil {
			return serviceError(c, "Failed to create contact request", err)
		}

		return created(c, fiber.Map{"request": request})
	}
}

// CancelContactRequestRPC withdraws a pending request sent by the caller
func CancelContactRequestRPC(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CancelContactRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		request, err := a.Contacts.Cancel(middleware.GetUserID(c), req.RequestID)
		if err != nil {
			return serviceError(c, "Failed to cancel contact request", err)
		}

		return success(c, fiber.Map{"request": request})
	}
}

// RespondToRequestRPC approves or rejects a request addressed to the caller
func RespondToRequestRPC(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RespondContactRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		request, err := a.Contacts.Respond(middleware.GetUserID(c), req.RequestID, req.Approve)
		if err != nil {
			return serviceError(c, "Failed to respond to contact request", err)
		}

		return success(c, fiber.Map{"request": request})
	}
}

func MarkAllNotificationsReadRPC(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.Notifications.MarkAllRead(middleware.GetUserID(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to update notifications", err)
		}

		return success(c, fiber.Map{"updated": count})
	}
}

// IncrementCVViewRPC counts a CV view, at most once per viewer and window
func IncrementCVViewRPC(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CVViewRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		counted, err := a.CVs.RecordView(middleware.GetUserID(c), req.CVID)
		if err != nil {
			return serviceError(c, "Failed to record view", err)
		}

		return success(c, fiber.Map{"counted": counted})
	}
}

// DeleteAccountRPC removes the caller and everything they own
func DeleteAccountRPC(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Accounts.Delete(c.UserContext(), middleware.GetUserID(c)); err != nil {
			return serviceError(c, "Failed to delete account", err)
		}

		return success(c, fiber.Map{"deleted": true})
	}
}
