package listing

import (
	"math"
	"sort"

	"kartvizid/models"
)

// PlatformStats summarizes the public CV pool
type PlatformStats struct {
	TotalCVs          int            `json:"total_cvs"`
	ActiveCVs         int            `json:"active_cvs"`
	Cities            int            `json:"cities"`
	Professions       int            `json:"professions"`
	AverageExperience float64        `json:"average_experience"`
	TotalViews        int            `json:"total_views"`
	ByWorkType        map[string]int `json:"by_work_type"`
	TopCities         []CityCount    `json:"top_cities"`
}

type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// DashboardStats are the per-user counters shown next to the notification bell
type DashboardStats struct {
	UnreadNotifications int `json:"unread_notifications"`
	PendingReceived     int `json:"pending_received"`
	PendingSent         int `json:"pending_sent"`
	ApprovedSent        int `json:"approved_sent"`
	ApprovedReceived    int `json:"approved_received"`
	SavedCVs            int `json:"saved_cvs"`
	CVViews             int `json:"cv_views"`
}

const topCityLimit = 5

// ComputePlatformStats derives the public counters. total counts every CV;
// the remaining counters only look at the active ones in cvs.
func ComputePlatformStats(total int, cvs []models.CV) PlatformStats {
	stats := PlatformStats{
		TotalCVs:   total,
		ActiveCVs:  len(cvs),
		ByWorkType: make(map[string]int),
		TopCities:  make([]CityCount, 0),
	}
	if len(cvs) == 0 {
		return stats
	}

	cityCounts := make(map[string]int)
	cityLabels := make(map[string]string)
	professions := make(map[string]struct{})
	experience := 0

	for _, cv := range cvs {
		if cv.City != "" {
			key := Fold(cv.City)
			if _, seen := cityLabels[key]; !seen {
				cityLabels[key] = cv.City
			}
			cityCounts[key]++
		}
		if cv.Profession != "" {
			professions[Fold(cv.Profession)] = struct{}{}
		}
		if cv.WorkType != "" {
			stats.ByWorkType[cv.WorkType]++
		}
		experience += cv.ExperienceYears
		stats.TotalViews += cv.Views
	}

	stats.Cities = len(cityCounts)
	stats.Professions = len(professions)
	stats.AverageExperience = math.Round(float64(experience)/float64(len(cvs))*10) / 10

	for key, count := range cityCounts {
		stats.TopCities = append(stats.TopCities, CityCount{City: cityLabels[key], Count: count})
	}
	sort.Slice(stats.TopCities, func(i, j int) bool {
		return cityBefore(stats.TopCities[i], stats.TopCities[j])
	})
	if len(stats.TopCities) > topCityLimit {
		stats.TopCities = stats.TopCities[:topCityLimit]
	}

	return stats
}

func cityBefore(a, b CityCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return Fold(a.City) < Fold(b.City)
}

// ComputeDashboardStats derives per-user counters from already loaded rows
func ComputeDashboardStats(
	cv *models.CV,
	sent, received []models.ContactRequest,
	feed []models.NotificationItem,
	savedCount int,
) DashboardStats {
	stats := DashboardStats{
		UnreadNotifications: UnreadCount(feed),
		SavedCVs:            savedCount,
	}
	if cv != nil {
		stats.CVViews = cv.Views
	}

	for _, req := range sent {
		switch req.Status {
		case models.RequestPending:
			stats.PendingSent++
		case models.RequestApproved:
			stats.ApprovedSent++
		}
	}
	for _, req := range received {
		switch req.Status {
		case models.RequestPending:
			stats.PendingReceived++
		case models.RequestApproved:
			stats.ApprovedReceived++
		}
	}

	return stats
}
