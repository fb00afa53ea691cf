package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"kartvizid/app"
	"kartvizid/cache"
	"kartvizid/config/setup"
	"kartvizid/database"
	"kartvizid/handlers"
	"kartvizid/models"
	"kartvizid/services"
	"kartvizid/viewguard"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	seekerID   = "seeker-user-id"
	employerID = "employer-user-id"
	testHeader = "X-Test-User"
)

type fixture struct {
	app   *app.App
	fiber *fiber.App
	cvID  string
}

// setupTestDB creates a temporary database seeded with one job seeker who
// published a CV and one employer with a company
func setupTestDB(t *testing.T) *fixture {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.New(dbPath)
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(), "Failed to run migrations")

	repo := database.NewRepository(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(repo, cache.NewMemoryCache(), viewguard.NewStore(30*time.Minute), logger)

	now := time.Now()
	require.NoError(t, repo.EnsureProfile(&models.Profile{
		ID: seekerID, Email: "ayse@example.com", FullName: "Ayşe Yılmaz", Role: models.RoleJobSeeker, CreatedAt: now,
	}))
	require.NoError(t, repo.EnsureProfile(&models.Profile{
		ID: employerID, Email: "ik@acme.com.tr", FullName: "Mert Demir", Role: models.RoleEmployer, CreatedAt: now,
	}))
	require.NoError(t, repo.UpsertCompany(&models.Company{
		ID: uuid.New().String(), UserID: employerID, Name: "Acme Yazılım", City: "Ankara", CreatedAt: now, UpdatedAt: now,
	}))

	cvID := uuid.New().String()
	require.NoError(t, repo.UpsertCV(&models.CV{
		ID: cvID, UserID: seekerID, Name: "Ayşe Yılmaz", Profession: "Yazılım Geliştirici",
		City: "İstanbul", WorkType: "remote", ExperienceYears: 5, Skills: []string{"Go", "SQL"},
		Email: "ayse@example.com", Phone: "05321234567", IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))

	return &fixture{app: application, fiber: setupTestApp(application), cvID: cvID}
}

// setupTestApp mounts the API behind a stub that injects the caller picked by
// the test header instead of verifying a token
func setupTestApp(application *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: setup.CustomErrorHandler(application.Logger),
	})

	api := fiberApp.Group("/api", func(c *fiber.Ctx) error {
		userID := c.Get(testHeader, seekerID)
		c.Locals("userID", userID)
		c.Locals("requestID", "test-request-id")
		return c.Next()
	})
	setup.RegisterAPI(api, application)

	return fiberApp
}

func (f *fixture) do(t *testing.T, userID, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(testHeader, userID)

	resp, err := f.fiber.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func TestGetMe(t *testing.T) {
	f := setupTestDB(t)

	status, body := f.do(t, employerID, http.MethodGet, "/api/me", nil)

	assert.Equal(t, http.StatusOK, status)
	profile := body["profile"].(map[string]any)
	assert.Equal(t, "employer", profile["role"])
}

func TestListCVs(t *testing.T) {
	f := setupTestDB(t)

	tests := []struct {
		name          string
		query         string
		expectedTotal float64
		expectedItems int
	}{
		{name: "No filter", query: "", expectedTotal: 1, expectedItems: 1},
		{name: "City matches case-insensitively", query: "?city=istanbul", expectedTotal: 1, expectedItems: 1},
		{name: "Other city", query: "?city=Ankara", expectedTotal: 0, expectedItems: 0},
		{name: "Skill filter", query: "?skill=go&work_type=remote", expectedTotal: 1, expectedItems: 1},
		{name: "Past the last page", query: "?page=3&page_size=1", expectedTotal: 1, expectedItems: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := f.do(t, employerID, http.MethodGet, "/api/cvs"+tt.query, nil)

			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.expectedTotal, body["total"])
			items := body["cvs"].([]any)
			assert.Len(t, items, tt.expectedItems)
			for _, item := range items {
				_, hasEmail := item.(map[string]any)["email"]
				assert.False(t, hasEmail, "contact details must not be listed")
			}
		})
	}
}

func TestContactRequestWorkflow(t *testing.T) {
	f := setupTestDB(t)

	// Before approval the employer sees no contact details
	status, body := f.do(t, employerID, http.MethodGet, "/api/cvs/"+f.cvID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["contact_visible"])
	assert.Nil(t, body["cv"].(map[string]any)["email"])

	status, body = f.do(t, employerID, http.MethodPost, "/api/rpc/create_contact_request_secure", fiber.Map{
		"cv_id":   f.cvID,
		"message": "Merhaba, pozisyonumuz için görüşmek isteriz.",
	})
	require.Equal(t, http.StatusCreated, status)
	requestID := body["request"].(map[string]any)["id"].(string)

	// A second pending request for the same pair is rejected
	status, body = f.do(t, employerID, http.MethodPost, "/api/rpc/create_contact_request_secure", fiber.Map{"cv_id": f.cvID})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, services.MsgDuplicateRequest, body["message"])
	assert.Equal(t, "test-request-id", body["request_id"])

	status, body = f.do(t, employerID, http.MethodGet, "/api/requests/status/"+f.cvID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pending", body["status"].(map[string]any)["status"])
	assert.Equal(t, false, body["status"].(map[string]any)["can_send"])

	// The candidate sees the request once in the feed
	status, body = f.do(t, seekerID, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, status)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "contact_request", items[0].(map[string]any)["kind"])
	assert.Contains(t, items[0].(map[string]any)["message"], "Acme Yazılım")
	assert.Equal(t, float64(1), body["unread"])

	// Only the target may respond
	status, _ = f.do(t, employerID, http.MethodPost, "/api/rpc/respond_to_request_secure", fiber.Map{
		"request_id": requestID, "approve": true,
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, body = f.do(t, seekerID, http.MethodPost, "/api/rpc/respond_to_request_secure", fiber.Map{
		"request_id": requestID, "approve": true,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "approved", body["request"].(map[string]any)["status"])

	// The answered request leaves nothing unread for the candidate
	status, body = f.do(t, seekerID, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, status)
	items = body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, true, items[0].(map[string]any)["is_read"])
	assert.Equal(t, float64(0), body["unread"])

	// Contact details are now visible to the employer
	status, body = f.do(t, employerID, http.MethodGet, "/api/cvs/"+f.cvID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["contact_visible"])
	assert.Equal(t, "ayse@example.com", body["cv"].(map[string]any)["email"])

	status, body = f.do(t, employerID, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, status)
	items = body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "request_approved", items[0].(map[string]any)["type"])

	// An answered request can no longer be withdrawn
	status, body = f.do(t, employerID, http.MethodPost, "/api/rpc/cancel_contact_request_secure", fiber.Map{"request_id": requestID})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, services.MsgRequestClosed, body["message"])

	status, body = f.do(t, employerID, http.MethodPost, "/api/rpc/create_contact_request_secure", fiber.Map{"cv_id": f.cvID})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, services.MsgAlreadyApproved, body["message"])
}

func TestCancelAndResend(t *testing.T) {
	f := setupTestDB(t)

	status, body := f.do(t, employerID, http.MethodPost, "/api/rpc/create_contact_request_secure", fiber.Map{"cv_id": f.cvID})
	require.Equal(t, http.StatusCreated, status)
	requestID := body["request"].(map[string]any)["id"].(string)

	// Only the requester may cancel
	status, _ = f.do(t, seekerID, http.MethodPost, "/api/rpc/cancel_contact_request_secure", fiber.Map{"request_id": requestID})
	assert.Equal(t, http.StatusForbidden, status)

	status, body = f.do(t, employerID, http.MethodPost, "/api/rpc/cancel_contact_request_secure", fiber.Map{"request_id": requestID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cancelled", body["request"].(map[string]any)["status"])

	status, body = f.do(t, seekerID, http.MethodGet, "/api/requests/received", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["requests"])

	status, _ = f.do(t, employerID, http.MethodPost, "/api/rpc/create_contact_request_secure", fiber.Map{"cv_id": f.cvID})
	assert.Equal(t, http.StatusCreated, status)
}

func TestCreateContactRequest_Rejections(t *testing.T) {
	f := setupTestDB(t)

	tests := []struct {
		name           string
		userID         string
		body           fiber.Map
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "Job seeker cannot send",
			userID:         seekerID,
			body:           fiber.Map{"cv_id": f.cvID},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    services.MsgNotEmployer,
		},
		{
			name:           "Malformed CV ID",
			userID:         employerID,
			body:           fiber.Map{"cv_id": "not-a-uuid"},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    services.MsgValidation,
		},
		{
			name:           "Unknown CV",
			userID:         employerID,
			body:           fiber.Map{"cv_id": uuid.New().String()},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    services.MsgCVNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := f.do(t, tt.userID, http.MethodPost, "/api/rpc/create_contact_request_secure", tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, body["message"])
		})
	}
}

func TestUpsertOwnCV(t *testing.T) {
	f := setupTestDB(t)

	status, body := f.do(t, seekerID, http.MethodPut, "/api/cv", fiber.Map{
		"name":       "Ayşe Yılmaz",
		"profession": "Kıdemli Yazılım Geliştirici",
		"city":       "İzmir",
		"work_type":  "hybrid",
		"skills":     []string{"Go", "Kubernetes"},
	})
	require.Equal(t, http.StatusOK, status)
	cv := body["cv"].(map[string]any)
	assert.Equal(t, f.cvID, cv["id"])
	assert.Equal(t, "İzmir", cv["city"])

	status, body = f.do(t, seekerID, http.MethodPut, "/api/cv", fiber.Map{
		"name":       "Ayşe Yılmaz",
		"profession": "Geliştirici",
		"city":       "İzmir",
		"work_type":  "office",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	fields := body["fields"].([]any)
	require.Len(t, fields, 1)
	assert.Equal(t, "work_type", fields[0].(map[string]any)["field"])
}

func TestIncrementCVView(t *testing.T) {
	f := setupTestDB(t)

	status, body := f.do(t, employerID, http.MethodPost, "/api/rpc/increment_cv_view", fiber.Map{"cv_id": f.cvID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["counted"])

	status, body = f.do(t, employerID, http.MethodPost, "/api/rpc/increment_cv_view", fiber.Map{"cv_id": f.cvID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["counted"])

	status, body = f.do(t, seekerID, http.MethodPost, "/api/rpc/increment_cv_view", fiber.Map{"cv_id": f.cvID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["counted"])

	status, body = f.do(t, seekerID, http.MethodGet, "/api/cv", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["cv"].(map[string]any)["views"])
}

func TestSavedCVs(t *testing.T) {
	f := setupTestDB(t)

	status, _ := f.do(t, employerID, http.MethodPost, "/api/saved/"+f.cvID, nil)
	require.Equal(t, http.StatusCreated, status)

	status, body := f.do(t, employerID, http.MethodGet, "/api/saved", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["cvs"], 1)

	status, body = f.do(t, seekerID, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, status)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "cv_saved", items[0].(map[string]any)["type"])

	status, _ = f.do(t, seekerID, http.MethodPost, "/api/rpc/mark_all_notifications_read", nil)
	require.Equal(t, http.StatusOK, status)

	status, body = f.do(t, seekerID, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["dashboard"].(map[string]any)["unread_notifications"])

	status, _ = f.do(t, employerID, http.MethodDelete, "/api/saved/"+f.cvID, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = f.do(t, employerID, http.MethodGet, "/api/saved", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["cvs"])
}

func TestPlatformStats(t *testing.T) {
	f := setupTestDB(t)

	status, body := f.do(t, employerID, http.MethodGet, "/api/stats", nil)

	require.Equal(t, http.StatusOK, status)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["total_cvs"])
	assert.Equal(t, float64(1), stats["active_cvs"])
	assert.Equal(t, float64(5), stats["average_experience"])
}

func TestDeleteAccount(t *testing.T) {
	f := setupTestDB(t)

	status, _ := f.do(t, employerID, http.MethodPost, "/api/rpc/create_contact_request_secure", fiber.Map{"cv_id": f.cvID})
	require.Equal(t, http.StatusCreated, status)

	status, _ = f.do(t, seekerID, http.MethodPost, "/api/rpc/delete_account", nil)
	require.Equal(t, http.StatusOK, status)

	status, body := f.do(t, seekerID, http.MethodGet, "/api/cv", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, services.MsgCVNotFound, body["message"])

	status, body = f.do(t, employerID, http.MethodGet, "/api/requests/sent", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["requests"])
}

func TestServerTime(t *testing.T) {
	app := fiber.New()
	app.Get("/api/time", handlers.ServerTime)

	req := httptest.NewRequest(http.MethodGet, "/api/time?timezone=Mars/Olympus", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UTC", body["timezone"])
	assert.NotEmpty(t, body["iso"])
}
