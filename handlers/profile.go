package handlers

import (
	"kartvizid/app"
	"kartvizid/middleware"
	"kartvizid/models"

	"github.com/gofiber/fiber/v2"
)

// GetMe returns the caller's profile
func GetMe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := a.Profiles.Get(middleware.GetUserID(c))
		if err != nil {
			return serviceError(c, "Failed to fetch profile", err)
		}

		return success(c, fiber.Map{"profile": profile})
	}
}

// UpdateMe changes the caller's name and role
func UpdateMe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		profile, err := a.Profiles.Update(middleware.GetUserID(c), req)
		if err != nil {
			return serviceError(c, "Failed to update profile", err)
		}

		return success(c, fiber.Map{"profile": profile})
	}
}
