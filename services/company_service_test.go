package services

import (
	"kartvizid/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompanyService_Upsert(t *testing.T) {
	req := models.UpsertCompanyRequest{Name: " Acme Yazılım ", City: "Ankara", Size: "11-50"}

	t.Run("Creates company for employer", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProfile", "employer1").Return(employer(), nil)
		repo.On("GetCompanyByUser", "employer1").Return(nil, nil)
		repo.On("UpsertCompany", mock.MatchedBy(func(c *models.Company) bool {
			return c.UserID == "employer1" && c.Name == "Acme Yazılım"
		})).Return(nil)

		company, err := NewCompanyService(repo).Upsert("employer1", req)

		require.NoError(t, err)
		assert.NotEmpty(t, company.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Keeps ID of existing company", func(t *testing.T) {
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		repo := new(MockRepository)
		repo.On("GetProfile", "employer1").Return(employer(), nil)
		repo.On("GetCompanyByUser", "employer1").Return(&models.Company{ID: "co1", CreatedAt: created}, nil)
		repo.On("UpsertCompany", mock.Anything).Return(nil)

		company, err := NewCompanyService(repo).Upsert("employer1", req)

		require.NoError(t, err)
		assert.Equal(t, "co1", company.ID)
		assert.Equal(t, created, company.CreatedAt)
	})

	t.Run("Job seekers cannot own a company", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProfile", "seeker1").Return(&models.Profile{ID: "seeker1", Role: models.RoleJobSeeker}, nil)

		_, err := NewCompanyService(repo).Upsert("seeker1", req)

		assert.ErrorIs(t, err, ErrNotEmployer)
		repo.AssertNotCalled(t, "UpsertCompany", mock.Anything)
	})
}

func TestCompanyService_Get(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetCompany", "missing").Return(nil, nil)

	_, err := NewCompanyService(repo).Get("missing")

	assert.ErrorIs(t, err, ErrCompanyNotFound)
}
