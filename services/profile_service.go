package services

import (
	"kartvizid/models"
	"strings"
	"time"
)

// ProfileService handles business logic for user profiles
type ProfileService struct {
	repo ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Ensure returns the caller's profile, creating it from identity claims on
// first sight. Unknown roles fall back to job seeker.
func (ps *ProfileService) Ensure(userID, email, fullName, role string) (*models.Profile, error) {
	existing, err := ps.repo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	profile := &models.Profile{
		ID:        userID,
		Email:     email,
		FullName:  strings.TrimSpace(fullName),
		Role:      parseRole(role),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ps.repo.EnsureProfile(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Get retrieves a profile
func (ps *ProfileService) Get(userID string) (*models.Profile, error) {
	profile, err := ps.repo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Update changes the caller's display name and role
func (ps *ProfileService) Update(userID string, req models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := ps.Get(userID)
	if err != nil {
		return nil, err
	}

	profile.FullName = strings.TrimSpace(req.FullName)
	profile.Role = parseRole(req.Role)
	profile.UpdatedAt = time.Now()

	if err := ps.repo.UpdateProfile(userID, profile.FullName, profile.Role); err != nil {
		return nil, err
	}

	return profile, nil
}

func parseRole(role string) models.Role {
	if models.Role(role) == models.RoleEmployer {
		return models.RoleEmployer
	}
	return models.RoleJobSeeker
}
