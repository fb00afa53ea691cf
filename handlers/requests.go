package handlers

import (
	"kartvizid/app"
	"kartvizid/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListSentRequests returns the contact requests the caller sent
func ListSentRequests(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requests, err := a.Contacts.ListSent(middleware.GetUserID(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch sent requests", err)
		}

		return success(c, fiber.Map{"requests": requests})
	}
}

// ListReceivedRequests returns the contact requests addressed to the caller
func ListReceivedRequests(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requests, err := a.Contacts.ListReceived(middleware.GetUserID(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch received requests", err)
		}

		return success(c, fiber.Map{"requests": requests})
	}
}

// GetRequestStatus tells the caller whether they can contact a CV's owner
func GetRequestStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := a.Contacts.StatusFor(middleware.GetUserID(c), c.Params("cvId"))
		if err != nil {
			return serviceError(c, "Failed to fetch request status", err)
		}

		return success(c, fiber.Map{"status": status})
	}
}
