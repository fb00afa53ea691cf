package database

import (
	"database/sql"
	"kartvizid/models"
	"time"
)

// ==================== PROFILE OPERATIONS ====================

// GetProfile retrieves a profile by user ID
func (r *Repository) GetProfile(userID string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.QueryRow(`
		SELECT id, email, full_name, role, created_at, updated_at
		FROM profiles WHERE id = ?
	`, userID).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.CreatedAt, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// EnsureProfile inserts a profile on first sight and keeps the email current.
// Name and role are only taken from the identity claims when the row is new.
func (r *Repository) EnsureProfile(p *models.Profile) error {
	_, err := r.db.Exec(`
		INSERT INTO profiles (id, email, full_name, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email
	`, p.ID, p.Email, p.FullName, string(p.Role), p.CreatedAt, time.Now())
	return err
}

// UpdateProfile updates the editable profile fields
func (r *Repository) UpdateProfile(userID, fullName string, role models.Role) error {
	_, err := r.db.Exec(`
		UPDATE profiles SET
			full_name = ?,
			role = ?,
			updated_at = ?
		WHERE id = ?
	`, fullName, string(role), time.Now(), userID)
	return err
}

// DeleteProfile removes a profile; foreign keys cascade to every owned row
func (r *Repository) DeleteProfile(userID string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM profiles WHERE id = ?", userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
