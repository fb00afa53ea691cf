package database

import (
	"database/sql"
	"kartvizid/models"
)

// ==================== COMPANY OPERATIONS ====================

const companyColumns = `id, user_id, name, industry, city, size, website, description, logo_url, created_at, updated_at`

func scanCompany(row rowScanner) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Industry, &c.City, &c.Size,
		&c.Website, &c.Description, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCompany retrieves a company by its ID
func (r *Repository) GetCompany(companyID string) (*models.Company, error) {
	c, err := scanCompany(r.db.QueryRow(`SELECT `+companyColumns+` FROM companies WHERE id = ?`, companyID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// GetCompanyByUser retrieves the company owned by an employer
func (r *Repository) GetCompanyByUser(userID string) (*models.Company, error) {
	c, err := scanCompany(r.db.QueryRow(`SELECT `+companyColumns+` FROM companies WHERE user_id = ?`, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// UpsertCompany creates the employer's company or updates it in place
func (r *Repository) UpsertCompany(c *models.Company) error {
	_, err := r.db.Exec(`
		INSERT INTO companies (`+companyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			industry = excluded.industry,
			city = excluded.city,
			size = excluded.size,
			website = excluded.website,
			description = excluded.description,
			logo_url = excluded.logo_url,
			updated_at = excluded.updated_at
	`,
		c.ID, c.UserID, c.Name, c.Industry, c.City, c.Size,
		c.Website, c.Description, c.LogoURL, c.CreatedAt, c.UpdatedAt,
	)
	return err
}
