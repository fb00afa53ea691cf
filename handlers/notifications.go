package handlers

import (
	"kartvizid/app"
	"kartvizid/listing"
	"kartvizid/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications returns the merged notification feed
func GetNotifications(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := a.Notifications.Feed(middleware.GetUserID(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notifications", err)
		}

		return success(c, fiber.Map{
			"items":  items,
			"unread": listing.UnreadCount(items),
		})
	}
}

// MarkNotificationRead marks one notification as read
func MarkNotificationRead(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Notifications.MarkRead(middleware.GetUserID(c), c.Params("id")); err != nil {
			return serviceError(c, "Failed to update notification", err)
		}

		return success(c, fiber.Map{"read": true})
	}
}

// DeleteNotification removes one notification
func DeleteNotification(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Notifications.Delete(middleware.GetUserID(c), c.Params("id")); err != nil {
			return serviceError(c, "Failed to delete notification", err)
		}

		return success(c, fiber.Map{"deleted": true})
	}
}
