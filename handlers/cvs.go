package handlers

import (
	"kartvizid/app"
	"kartvizid/listing"
	"kartvizid/middleware"
	"kartvizid/models"
	"kartvizid/services"

	"github.com/gofiber/fiber/v2"
)

// ListCVs returns one page of active CVs matching the query filters
func ListCVs(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter listing.Filter
		if err := c.QueryParser(&filter); err != nil {
			return badRequest(c, "Invalid filter")
		}

		page, err := a.CVs.List(services.CVQuery{
			Filter:   filter,
			Sort:     listing.ParseSortKey(c.Query("sort")),
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("page_size", listing.DefaultPageSize),
		})
		if err != nil {
			return serverErrorWithDetails(c, "Failed to list CVs", err)
		}

		return success(c, fiber.Map{
			"cvs":         page.Items,
			"page":        page.Page,
			"page_size":   page.PageSize,
			"total":       page.Total,
			"total_pages": page.TotalPages,
		})
	}
}

// GetCV returns a single CV; contact details only when the caller may see them
func GetCV(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		detail, err := a.CVs.Get(middleware.GetUserID(c), c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to fetch CV", err)
		}

		return success(c, fiber.Map{
			"cv":              detail.CV,
			"contact_visible": detail.ContactVisible,
			"is_owner":        detail.IsOwner,
		})
	}
}

// GetOwnCV returns the caller's CV
func GetOwnCV(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cv, err := a.CVs.GetOwn(middleware.GetUserID(c))
		if err != nil {
			return serviceError(c, "Failed to fetch CV", err)
		}

		return success(c, fiber.Map{"cv": cv})
	}
}

// UpsertOwnCV creates or replaces the caller's CV
func UpsertOwnCV(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpsertCVRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		cv, err := a.CVs.Upsert(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return serviceError(c, "Failed to save CV", err)
		}

		return success(c, fiber.Map{"cv": cv})
	}
}

// DeleteOwnCV removes the caller's CV
func DeleteOwnCV(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.CVs.DeleteOwn(c.UserContext(), middleware.GetUserID(c)); err != nil {
			return serviceError(c, "Failed to delete CV", err)
		}

		return success(c, fiber.Map{"deleted": true})
	}
}
