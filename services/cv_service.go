package services

import (
	"context"
	"fmt"
	"kartvizid/cache"
	"kartvizid/listing"
	"kartvizid/models"
	"kartvizid/viewguard"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	platformStatsKey = "stats:platform"
	platformStatsTTL = time.Minute
)

// CVQuery describes one page of the public CV browser
type CVQuery struct {
	Filter   listing.Filter
	Sort     listing.SortKey
	Page     int
	PageSize int
}

// CVDetail is a CV as seen by a particular viewer
type CVDetail struct {
	CV             models.CV `json:"cv"`
	ContactVisible bool      `json:"contact_visible"`
	IsOwner        bool      `json:"is_owner"`
}

// CVService handles business logic for CVs and bookmarks
type CVService struct {
	repo   CVRepository
	cache  cache.Cache
	views  *viewguard.Store
	logger *slog.Logger
}

// NewCVService creates a new CV service
func NewCVService(repo CVRepository, c cache.Cache, views *viewguard.Store, logger *slog.Logger) *CVService {
	return &CVService{
		repo:   repo,
		cache:  c,
		views:  views,
		logger: logger,
	}
}

// GetOwn retrieves the caller's CV including contact details
func (cs *CVService) GetOwn(userID string) (*models.CV, error) {
	cv, err := cs.repo.GetCVByUser(userID)
	if err != nil {
		return nil, err
	}
	if cv == nil {
		return nil, ErrCVNotFound
	}
	return cv, nil
}

// Upsert creates or replaces the caller's CV
func (cs *CVService) Upsert(ctx context.Context, userID string, req models.UpsertCVRequest) (*models.CV, error) {
	existing, err := cs.repo.GetCVByUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cv := &models.CV{
		ID:        uuid.New().String(),
		UserID:    userID,
		IsActive:  true,
		CreatedAt: now,
	}
	if existing != nil {
		cv.ID = existing.ID
		cv.Views = existing.Views
		cv.CreatedAt = existing.CreatedAt
		cv.IsActive = existing.IsActive
	}
	if req.IsActive != nil {
		cv.IsActive = *req.IsActive
	}

	cv.Name = strings.TrimSpace(req.Name)
	cv.Profession = strings.TrimSpace(req.Profession)
	cv.City = strings.TrimSpace(req.City)
	cv.District = strings.TrimSpace(req.District)
	cv.ExperienceYears = req.ExperienceYears
	cv.EducationLevel = req.EducationLevel
	cv.Skills = cleanList(req.Skills)
	cv.Languages = cleanList(req.Languages)
	cv.About = strings.TrimSpace(req.About)
	cv.SalaryMin = req.SalaryMin
	cv.SalaryMax = req.SalaryMax
	cv.WorkType = req.WorkType
	cv.EmploymentType = req.EmploymentType
	cv.MilitaryStatus = req.MilitaryStatus
	cv.DrivingLicense = req.DrivingLicense
	cv.CanTravel = req.CanTravel
	cv.IsDisabled = req.IsDisabled
	cv.IsRetired = req.IsRetired
	cv.IsStudent = req.IsStudent
	cv.PhotoURL = req.PhotoURL
	cv.Email = strings.TrimSpace(req.Email)
	cv.Phone = strings.TrimSpace(req.Phone)
	cv.UpdatedAt = now

	if err := cs.repo.UpsertCV(cv); err != nil {
		return nil, fmt.Errorf("failed to save cv: %w", err)
	}

	cs.invalidateStats(ctx)
	return cv, nil
}

// DeleteOwn removes the caller's CV
func (cs *CVService) DeleteOwn(ctx context.Context, userID string) error {
	deleted, err := cs.repo.DeleteCVByUser(userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCVNotFound
	}

	cs.invalidateStats(ctx)
	return nil
}

// List returns one filtered, sorted page of active CVs without contact details
func (cs *CVService) List(q CVQuery) (listing.Page[models.CV], error) {
	cvs, err := cs.repo.ListActiveCVs()
	if err != nil {
		return listing.Page[models.CV]{}, err
	}

	matched := listing.Apply(cvs, q.Filter)
	listing.Sort(matched, q.Sort)
	for i := range matched {
		matched[i] = matched[i].WithoutContact()
	}

	return listing.Paginate(matched, q.Page, q.PageSize), nil
}

// Get returns a CV for viewerID. Contact details are only included for the
// owner or an employer whose contact request was approved. Inactive CVs are
// only visible to their owner.
func (cs *CVService) Get(viewerID, cvID string) (*CVDetail, error) {
	cv, err := cs.repo.GetCV(cvID)
	if err != nil {
		return nil, err
	}
	if cv == nil {
		return nil, ErrCVNotFound
	}

	isOwner := cv.UserID == viewerID
	if !cv.IsActive && !isOwner {
		return nil, ErrCVNotFound
	}

	visible := isOwner
	if !visible {
		visible, err = cs.repo.HasApprovedRequest(viewerID, cv.UserID)
		if err != nil {
			return nil, err
		}
	}

	detail := &CVDetail{CV: *cv, ContactVisible: visible, IsOwner: isOwner}
	if !visible {
		detail.CV = cv.WithoutContact()
	}
	return detail, nil
}

// RecordView increments the view counter of cvID once per viewer and window.
// Owners viewing their own CV are not counted.
func (cs *CVService) RecordView(viewerID, cvID string) (bool, error) {
	cv, err := cs.repo.GetCV(cvID)
	if err != nil {
		return false, err
	}
	if cv == nil || !cv.IsActive {
		return false, ErrCVNotFound
	}
	if cv.UserID == viewerID {
		return false, nil
	}

	if cs.views != nil && !cs.views.Allow(viewerID, cvID) {
		return false, nil
	}

	counted, err := cs.repo.IncrementCVViews(cvID, viewerID)
	if err != nil {
		if cs.views != nil {
			cs.views.Forget(viewerID, cvID)
		}
		return false, err
	}
	return counted, nil
}

// Save bookmarks a CV and lets its owner know an employer is interested
func (cs *CVService) Save(userID, cvID string) error {
	cv, err := cs.repo.GetCV(cvID)
	if err != nil {
		return err
	}
	if cv == nil || !cv.IsActive {
		return ErrCVNotFound
	}
	if cv.UserID == userID {
		return ErrOwnCV
	}

	added, err := cs.repo.SaveCV(userID, cvID)
	if err != nil {
		return err
	}
	if !added {
		return nil
	}

	profile, err := cs.repo.GetProfile(userID)
	if err != nil || !profile.IsEmployer() {
		return nil
	}

	notification := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    cv.UserID,
		Type:      models.NotificationCVSaved,
		Title:     "CV'niz kaydedildi",
		Message:   "Bir işveren CV'nizi kaydettiği adaylar listesine ekledi.",
		RelatedID: cv.ID,
		CreatedAt: time.Now(),
	}
	if err := cs.repo.CreateNotification(notification); err != nil {
		// The bookmark itself succeeded
		cs.logger.Warn("failed to create cv_saved notification", "cv_id", cvID, "error", err)
	}
	return nil
}

// Unsave removes a bookmark
func (cs *CVService) Unsave(userID, cvID string) error {
	return cs.repo.UnsaveCV(userID, cvID)
}

// ListSaved returns the caller's bookmarked CVs without contact details
func (cs *CVService) ListSaved(userID string) ([]models.CV, error) {
	cvs, err := cs.repo.ListSavedCVs(userID)
	if err != nil {
		return nil, err
	}
	for i := range cvs {
		cvs[i] = cvs[i].WithoutContact()
	}
	return cvs, nil
}

// PlatformStats returns the public counters, served from cache when fresh
func (cs *CVService) PlatformStats(ctx context.Context) (listing.PlatformStats, error) {
	var stats listing.PlatformStats
	if cs.cache != nil {
		hit, err := cs.cache.GetJSON(ctx, platformStatsKey, &stats)
		if err != nil {
			cs.logger.Warn("stats cache read failed", "error", err)
		} else if hit {
			return stats, nil
		}
	}

	total, err := cs.repo.CountCVs()
	if err != nil {
		return listing.PlatformStats{}, err
	}
	cvs, err := cs.repo.ListActiveCVs()
	if err != nil {
		return listing.PlatformStats{}, err
	}
	stats = listing.ComputePlatformStats(total, cvs)

	if cs.cache != nil {
		if err := cs.cache.SetJSON(ctx, platformStatsKey, stats, platformStatsTTL); err != nil {
			cs.logger.Warn("stats cache write failed", "error", err)
		}
	}
	return stats, nil
}

func (cs *CVService) invalidateStats(ctx context.Context) {
	if cs.cache == nil {
		return
	}
	if err := cs.cache.Del(ctx, platformStatsKey); err != nil {
		cs.logger.Warn("stats cache invalidation failed", "error", err)
	}
}

// cleanList trims entries and drops blanks and duplicates under listing.Fold
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := listing.Fold(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
