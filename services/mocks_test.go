package services

import (
	"io"
	"kartvizid/models"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockRepository implements every repository interface used by the services
type MockRepository struct {
	mock.Mock
}

var (
	_ ProfileRepository      = (*MockRepository)(nil)
	_ CVRepository           = (*MockRepository)(nil)
	_ CompanyRepository      = (*MockRepository)(nil)
	_ ContactRepository      = (*MockRepository)(nil)
	_ NotificationRepository = (*MockRepository)(nil)
	_ AccountRepository      = (*MockRepository)(nil)
)

// Profiles
func (m *MockRepository) GetProfile(userID string) (*models.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockRepository) EnsureProfile(p *models.Profile) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockRepository) UpdateProfile(userID, fullName string, role models.Role) error {
	args := m.Called(userID, fullName, role)
	return args.Error(0)
}

func (m *MockRepository) DeleteProfile(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

// CVs
func (m *MockRepository) GetCV(cvID string) (*models.CV, error) {
	args := m.Called(cvID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CV), args.Error(1)
}

func (m *MockRepository) GetCVByUser(userID string) (*models.CV, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CV), args.Error(1)
}

func (m *MockRepository) ListActiveCVs() ([]models.CV, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CV), args.Error(1)
}

func (m *MockRepository) CountCVs() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListSavedCVs(userID string) ([]models.CV, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CV), args.Error(1)
}

func (m *MockRepository) UpsertCV(cv *models.CV) error {
	args := m.Called(cv)
	return args.Error(0)
}

func (m *MockRepository) DeleteCVByUser(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) IncrementCVViews(cvID, viewerID string) (bool, error) {
	args := m.Called(cvID, viewerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) HasApprovedRequest(requesterID, targetUserID string) (bool, error) {
	args := m.Called(requesterID, targetUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) SaveCV(userID, cvID string) (bool, error) {
	args := m.Called(userID, cvID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) UnsaveCV(userID, cvID string) error {
	args := m.Called(userID, cvID)
	return args.Error(0)
}

func (m *MockRepository) GetSavedCVIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Companies
func (m *MockRepository) GetCompany(companyID string) (*models.Company, error) {
	args := m.Called(companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) GetCompanyByUser(userID string) (*models.Company, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) UpsertCompany(c *models.Company) error {
	args := m.Called(c)
	return args.Error(0)
}

// Contact requests
func (m *MockRepository) GetContactRequest(requestID string) (*models.ContactRequest, error) {
	args := m.Called(requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactRequest), args.Error(1)
}

func (m *MockRepository) GetLatestRequestBetween(requesterID, targetUserID string) (*models.ContactRequest, error) {
	args := m.Called(requesterID, targetUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactRequest), args.Error(1)
}

func (m *MockRepository) ListSentRequests(requesterID string) ([]models.ContactRequest, error) {
	args := m.Called(requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactRequest), args.Error(1)
}

func (m *MockRepository) ListReceivedRequests(targetUserID string) ([]models.ContactRequest, error) {
	args := m.Called(targetUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactRequest), args.Error(1)
}

func (m *MockRepository) CreateContactRequest(req *models.ContactRequest, notification *models.Notification) error {
	args := m.Called(req, notification)
	return args.Error(0)
}

func (m *MockRepository) TransitionContactRequest(requestID string, status models.RequestStatus, notification *models.Notification) (bool, error) {
	args := m.Called(requestID, status, notification)
	return args.Bool(0), args.Error(1)
}

// Notifications
func (m *MockRepository) CreateNotification(n *models.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockRepository) ListNotifications(userID string, limit int) ([]models.Notification, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockRepository) MarkNotificationRead(userID, notificationID string) (bool, error) {
	args := m.Called(userID, notificationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) MarkAllNotificationsRead(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) DeleteNotification(userID, notificationID string) (bool, error) {
	args := m.Called(userID, notificationID)
	return args.Bool(0), args.Error(1)
}
