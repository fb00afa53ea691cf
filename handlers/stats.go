package handlers

import (
	"kartvizid/app"
	"kartvizid/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetPlatformStats returns the public counters of the CV pool
func GetPlatformStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.CVs.PlatformStats(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to compute statistics", err)
		}

		return success(c, fiber.Map{"stats": stats})
	}
}

// GetDashboard returns the caller's own counters
func GetDashboard(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Notifications.Dashboard(middleware.GetUserID(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to compute dashboard", err)
		}

		return success(c, fiber.Map{"dashboard": stats})
	}
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ServerTime returns the server time in the requested IANA zone, UTC otherwise
func ServerTime(c *fiber.Ctx) error {
	timezone := c.Query("timezone", "UTC")

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
		timezone = "UTC"
	}

	now := time.Now().In(loc)

	return c.JSON(fiber.Map{
		"timestamp": now.Unix(),
		"timezone":  timezone,
		"iso":       now.Format(time.RFC3339),
	})
}
