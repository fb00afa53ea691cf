package handlers

import (
	"kartvizid/app"
	"kartvizid/middleware"
	"kartvizid/models"

	"github.com/gofiber/fiber/v2"
)

// GetCompany returns a company's public page
func GetCompany(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := a.Companies.Get(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to fetch company", err)
		}

		return success(c, fiber.Map{"company": company})
	}
}

// GetOwnCompany returns the caller's company
func GetOwnCompany(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := a.Companies.GetOwn(middleware.GetUserID(c))
		if err != nil {
			return serviceError(c, "Failed to fetch company", err)
		}

		return success(c, fiber.Map{"company": company})
	}
}

// UpsertOwnCompany creates or updates the caller's company
func UpsertOwnCompany(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpsertCompanyRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		company, err := a.Companies.Upsert(middleware.GetUserID(c), req)
		if err != nil {
			return serviceError(c, "Failed to save company", err)
		}

		return success(c, fiber.Map{"company": company})
	}
}
