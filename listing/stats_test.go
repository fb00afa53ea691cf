package listing

import (
	"testing"

	"kartvizid/models"

	"github.com/stretchr/testify/assert"
)

func TestComputePlatformStats(t *testing.T) {
	cvs := sampleCVs()
	cvs = append(cvs, models.CV{ID: "cv4", City: "ankara", Profession: "muhasebeci", ExperienceYears: 3, WorkType: "onsite"})

	stats := ComputePlatformStats(6, cvs)

	assert.Equal(t, 6, stats.TotalCVs)
	assert.Equal(t, 4, stats.ActiveCVs)
	assert.Equal(t, 3, stats.Cities)
	assert.Equal(t, 3, stats.Professions)
	assert.Equal(t, 5.0, stats.AverageExperience)
	assert.Equal(t, 20, stats.TotalViews)
	assert.Equal(t, map[string]int{"remote": 1, "onsite": 2, "hybrid": 1}, stats.ByWorkType)
	assert.Equal(t, CityCount{City: "Ankara", Count: 2}, stats.TopCities[0])
	assert.Len(t, stats.TopCities, 3)
}

func TestComputePlatformStats_Empty(t *testing.T) {
	stats := ComputePlatformStats(2, nil)

	assert.Equal(t, 2, stats.TotalCVs)
	assert.Equal(t, 0, stats.ActiveCVs)
	assert.Equal(t, 0.0, stats.AverageExperience)
	assert.NotNil(t, stats.TopCities)
	assert.NotNil(t, stats.ByWorkType)
}

func TestComputeDashboardStats(t *testing.T) {
	sent := []models.ContactRequest{
		{Status: models.RequestPending},
		{Status: models.RequestApproved},
		{Status: models.RequestApproved},
		{Status: models.RequestCancelled},
	}
	received := []models.ContactRequest{
		{Status: models.RequestPending},
		{Status: models.RequestRejected},
		{Status: models.RequestApproved},
	}
	feed := []models.NotificationItem{
		{Kind: models.ItemContactRequest},
		{Kind: models.ItemNotification},
	}

	stats := ComputeDashboardStats(&models.CV{Views: 42}, sent, received, feed, 6)

	assert.Equal(t, DashboardStats{
		UnreadNotifications: 2,
		PendingReceived:     1,
		PendingSent:         1,
		ApprovedSent:        2,
		ApprovedReceived:    1,
		SavedCVs:            6,
		CVViews:             42,
	}, stats)
}
