package app

import (
	"kartvizid/cache"
	"kartvizid/database"
	"kartvizid/services"
	"kartvizid/validator"
	"kartvizid/viewguard"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Cache     cache.Cache
	ViewGuard *viewguard.Store
	Validator *validator.Validator
	Logger    *slog.Logger

	Profiles      *services.ProfileService
	CVs           *services.CVService
	Companies     *services.CompanyService
	Contacts      *services.ContactService
	Notifications *services.NotificationService
	Accounts      *services.AccountService
}

// New creates a new App instance and wires the services over repo
func New(repo *database.Repository, c cache.Cache, views *viewguard.Store, logger *slog.Logger) *App {
	return &App{
		Repo:      repo,
		Cache:     c,
		ViewGuard: views,
		Validator: validator.New(),
		Logger:    logger,

		Profiles:      services.NewProfileService(repo),
		CVs:           services.NewCVService(repo, c, views, logger),
		Companies:     services.NewCompanyService(repo),
		Contacts:      services.NewContactService(repo, logger),
		Notifications: services.NewNotificationService(repo),
		Accounts:      services.NewAccountService(repo, c, logger),
	}
}
