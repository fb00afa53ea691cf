package services

import "kartvizid/models"

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	GetProfile(userID string) (*models.Profile, error)
	EnsureProfile(p *models.Profile) error
	UpdateProfile(userID, fullName string, role models.Role) error
}

// CVRepository defines the interface for CV and bookmark data access
type CVRepository interface {
	GetProfile(userID string) (*models.Profile, error)
	GetCV(cvID string) (*models.CV, error)
	GetCVByUser(userID string) (*models.CV, error)
	ListActiveCVs() ([]models.CV, error)
	CountCVs() (int, error)
	ListSavedCVs(userID string) ([]models.CV, error)
	UpsertCV(cv *models.CV) error
	DeleteCVByUser(userID string) (bool, error)
	IncrementCVViews(cvID, viewerID string) (bool, error)
	HasApprovedRequest(requesterID, targetUserID string) (bool, error)
	SaveCV(userID, cvID string) (bool, error)
	UnsaveCV(userID, cvID string) error
	CreateNotification(n *models.Notification) error
}

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	GetProfile(userID string) (*models.Profile, error)
	GetCompany(companyID string) (*models.Company, error)
	GetCompanyByUser(userID string) (*models.Company, error)
	UpsertCompany(c *models.Company) error
}

// ContactRepository defines the interface for contact request data access
type ContactRepository interface {
	GetProfile(userID string) (*models.Profile, error)
	GetCV(cvID string) (*models.CV, error)
	GetCompanyByUser(userID string) (*models.Company, error)
	GetContactRequest(requestID string) (*models.ContactRequest, error)
	GetLatestRequestBetween(requesterID, targetUserID string) (*models.ContactRequest, error)
	ListSentRequests(requesterID string) ([]models.ContactRequest, error)
	ListReceivedRequests(targetUserID string) ([]models.ContactRequest, error)
	CreateContactRequest(req *models.ContactRequest, notification *models.Notification) error
	TransitionContactRequest(requestID string, status models.RequestStatus, notification *models.Notification) (bool, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	ListNotifications(userID string, limit int) ([]models.Notification, error)
	ListReceivedRequests(targetUserID string) ([]models.ContactRequest, error)
	ListSentRequests(requesterID string) ([]models.ContactRequest, error)
	GetCVByUser(userID string) (*models.CV, error)
	GetSavedCVIDs(userID string) ([]string, error)
	MarkNotificationRead(userID, notificationID string) (bool, error)
	MarkAllNotificationsRead(userID string) (int64, error)
	DeleteNotification(userID, notificationID string) (bool, error)
}

// AccountRepository defines the interface for account removal
type AccountRepository interface {
	DeleteProfile(userID string) (bool, error)
}
