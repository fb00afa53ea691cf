package handlers

import (
	"kartvizid/app"
	"kartvizid/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListSaved returns the caller's bookmarked CVs
func ListSaved(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cvs, err := a.CVs.ListSaved(middleware.GetUserID(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch saved CVs", err)
		}

		return success(c, fiber.Map{"cvs": cvs})
	}
}

// SaveCV bookmarks a CV
func SaveCV(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.CVs.Save(middleware.GetUserID(c), c.Params("cvId")); err != nil {
			return serviceError(c, "Failed to save CV", err)
		}

		return created(c, fiber.Map{"saved": true})
	}
}

// UnsaveCV removes a bookmark
func UnsaveCV(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.CVs.Unsave(middleware.GetUserID(c), c.Params("cvId")); err != nil {
			return serverErrorWithDetails(c, "Failed to remove saved CV", err)
		}

		return success(c, fiber.Map{"saved": false})
	}
}
