package setup

import (
	"kartvizid/app"
	"kartvizid/config"
	"kartvizid/handlers"
	"kartvizid/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App, cfg *config.Config) {
	// Public routes
	fiberApp.Get("/health", handlers.Health)
	fiberApp.Get("/api/time", handlers.ServerTime)

	auth := middleware.AuthRequired(middleware.AuthConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	}, application.Profiles, application.Logger)

	// Protected API routes
	api := fiberApp.Group("/api", auth, limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID := middleware.GetUserID(c); userID != "" {
				return "user:" + userID
			}
			return c.IP()
		},
		LimitReached: rateLimited("Rate limit exceeded for your account"),
	}))

	RegisterAPI(api, application)
}

// RegisterAPI mounts the authenticated endpoints on router
func RegisterAPI(api fiber.Router, application *app.App) {
	api.Get("/me", handlers.GetMe(application))
	api.Put("/me", handlers.UpdateMe(application))

	api.Get("/cvs", handlers.ListCVs(application))
	api.Get("/cvs/:id", handlers.GetCV(application))
	api.Get("/cv", handlers.GetOwnCV(application))
	api.Put("/cv", handlers.UpsertOwnCV(application))
	api.Delete("/cv", handlers.DeleteOwnCV(application))

	api.Get("/companies/:id", handlers.GetCompany(application))
	api.Get("/company", handlers.GetOwnCompany(application))
	api.Put("/company", handlers.UpsertOwnCompany(application))

	api.Get("/saved", handlers.ListSaved(application))
	api.Post("/saved/:cvId", handlers.SaveCV(application))
	api.Delete("/saved/:cvId", handlers.UnsaveCV(application))

	api.Get("/requests/sent", handlers.ListSentRequests(application))
	api.Get("/requests/received", handlers.ListReceivedRequests(application))
	api.Get("/requests/status/:cvId", handlers.GetRequestStatus(application))

	api.Get("/notifications", handlers.GetNotifications(application))
	api.Post("/notifications/:id/read", handlers.MarkNotificationRead(application))
	api.Delete("/notifications/:id", handlers.DeleteNotification(application))

	api.Get("/stats", handlers.GetPlatformStats(application))
	api.Get("/dashboard", handlers.GetDashboard(application))

	rpc := api.Group("/rpc")
	rpc.Post("/create_contact_request_secure", handlers.CreateContactRequestRPC(application))
	rpc.Post("/cancel_contact_request_secure", handlers.CancelContactRequestRPC(application))
	rpc.Post("/respond_to_request_secure", handlers.RespondToRequestRPC(application))
	rpc.Post("/mark_all_notifications_read", handlers.MarkAllNotificationsReadRPC(application))
	rpc.Post("/increment_cv_view", handlers.IncrementCVViewRPC(application))
	rpc.Post("/delete_account", handlers.DeleteAccountRPC(application))
}
