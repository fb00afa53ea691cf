package services

import (
	"kartvizid/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CompanyService handles business logic for employer companies
type CompanyService struct {
	repo CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(repo CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

// Get retrieves a company by ID
func (cs *CompanyService) Get(companyID string) (*models.Company, error) {
	company, err := cs.repo.GetCompany(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// GetOwn retrieves the caller's company
func (cs *CompanyService) GetOwn(userID string) (*models.Company, error) {
	company, err := cs.repo.GetCompanyByUser(userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// Upsert creates or updates the caller's company. Only employers own one.
func (cs *CompanyService) Upsert(userID string, req models.UpsertCompanyRequest) (*models.Company, error) {
	profile, err := cs.repo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if !profile.IsEmployer() {
		return nil, ErrNotEmployer
	}

	existing, err := cs.repo.GetCompanyByUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &models.Company{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Industry:    strings.TrimSpace(req.Industry),
		City:        strings.TrimSpace(req.City),
		Size:        req.Size,
		Website:     req.Website,
		Description: strings.TrimSpace(req.Description),
		LogoURL:     req.LogoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if existing != nil {
		company.ID = existing.ID
		company.CreatedAt = existing.CreatedAt
	}

	if err := cs.repo.UpsertCompany(company); err != nil {
		return nil, err
	}

	return company, nil
}
