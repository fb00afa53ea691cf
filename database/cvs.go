package database

import (
	"database/sql"
	"kartvizid/models"
	"time"
)

// ==================== CV OPERATIONS ====================

const cvColumns = `id, user_id, name, profession, city, district, experience_years,
	education_level, skills, languages, about, salary_min, salary_max,
	work_type, employment_type, military_status, driving_license, can_travel,
	is_disabled, is_retired, is_student, is_active, photo_url, email, phone,
	views, created_at, updated_at`

func scanCV(row rowScanner) (*models.CV, error) {
	var cv models.CV
	var skills, languages string

	err := row.Scan(
		&cv.ID, &cv.UserID, &cv.Name, &cv.Profession, &cv.City, &cv.District,
		&cv.ExperienceYears, &cv.EducationLevel, &skills, &languages, &cv.About,
		&cv.SalaryMin, &cv.SalaryMax, &cv.WorkType, &cv.EmploymentType,
		&cv.MilitaryStatus, &cv.DrivingLicense, &cv.CanTravel, &cv.IsDisabled,
		&cv.IsRetired, &cv.IsStudent, &cv.IsActive, &cv.PhotoURL, &cv.Email,
		&cv.Phone, &cv.Views, &cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cv.Skills = decodeList(skills)
	cv.Languages = decodeList(languages)
	return &cv, nil
}

// GetCV retrieves a CV by its ID
func (r *Repository) GetCV(cvID string) (*models.CV, error) {
	cv, err := scanCV(r.db.QueryRow(`SELECT `+cvColumns+` FROM cvs WHERE id = ?`, cvID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return cv, err
}

// GetCVByUser retrieves the CV owned by a user
func (r *Repository) GetCVByUser(userID string) (*models.CV, error) {
	cv, err := scanCV(r.db.QueryRow(`SELECT `+cvColumns+` FROM cvs WHERE user_id = ?`, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return cv, err
}

// ListActiveCVs returns every published CV, newest first
func (r *Repository) ListActiveCVs() ([]models.CV, error) {
	return r.queryCVs(`SELECT `+cvColumns+` FROM cvs WHERE is_active = 1 ORDER BY created_at DESC`)
}

// CountCVs counts every CV, published or hidden
func (r *Repository) CountCVs() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM cvs`).Scan(&count)
	return count, err
}

// ListSavedCVs returns the CVs a user bookmarked, active or not
func (r *Repository) ListSavedCVs(userID string) ([]models.CV, error) {
	return r.queryCVs(`
		SELECT `+prefixed("c", cvColumns)+`
		FROM saved_cvs s
		JOIN cvs c ON c.id = s.cv_id
		WHERE s.user_id = ?
		ORDER BY s.created_at DESC
	`, userID)
}

func (r *Repository) queryCVs(query string, args ...interface{}) ([]models.CV, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cvs := make([]models.CV, 0)
	for rows.Next() {
		cv, err := scanCV(rows)
		if err != nil {
			return nil, err
		}
		cvs = append(cvs, *cv)
	}

	return cvs, rows.Err()
}

// UpsertCV creates the user's CV or updates it in place. The view counter
// and creation time are kept on update.
func (r *Repository) UpsertCV(cv *models.CV) error {
	_, err := r.db.Exec(`
		INSERT INTO cvs (`+cvColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			profession = excluded.profession,
			city = excluded.city,
			district = excluded.district,
			experience_years = excluded.experience_years,
			education_level = excluded.education_level,
			skills = excluded.skills,
			languages = excluded.languages,
			about = excluded.about,
			salary_min = excluded.salary_min,
			salary_max = excluded.salary_max,
			work_type = excluded.work_type,
			employment_type = excluded.employment_type,
			military_status = excluded.military_status,
			driving_license = excluded.driving_license,
			can_travel = excluded.can_travel,
			is_disabled = excluded.is_disabled,
			is_retired = excluded.is_retired,
			is_student = excluded.is_student,
			is_active = excluded.is_active,
			photo_url = excluded.photo_url,
			email = excluded.email,
			phone = excluded.phone,
			updated_at = excluded.updated_at
	`,
		cv.ID, cv.UserID, cv.Name, cv.Profession, cv.City, cv.District,
		cv.ExperienceYears, cv.EducationLevel, encodeList(cv.Skills),
		encodeList(cv.Languages), cv.About, cv.SalaryMin, cv.SalaryMax,
		cv.WorkType, cv.EmploymentType, cv.MilitaryStatus,
		boolToInt(cv.DrivingLicense), boolToInt(cv.CanTravel),
		boolToInt(cv.IsDisabled), boolToInt(cv.IsRetired),
		boolToInt(cv.IsStudent), boolToInt(cv.IsActive), cv.PhotoURL,
		cv.Email, cv.Phone, cv.CreatedAt, cv.UpdatedAt,
	)
	return err
}

// DeleteCVByUser deletes the user's CV; saved entries and requests cascade
func (r *Repository) DeleteCVByUser(userID string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM cvs WHERE user_id = ?", userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// IncrementCVViews bumps the view counter unless the viewer owns the CV
func (r *Repository) IncrementCVViews(cvID, viewerID string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE cvs SET views = views + 1
		WHERE id = ? AND user_id != ?
	`, cvID, viewerID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ==================== SAVED CV OPERATIONS ====================

// SaveCV bookmarks a CV for a user; saving twice is a no-op
func (r *Repository) SaveCV(userID, cvID string) (bool, error) {
	res, err := r.db.Exec(`
		INSERT INTO saved_cvs (user_id, cv_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, cv_id) DO NOTHING
	`, userID, cvID, time.Now())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// UnsaveCV removes a bookmark
func (r *Repository) UnsaveCV(userID, cvID string) error {
	_, err := r.db.Exec("DELETE FROM saved_cvs WHERE user_id = ? AND cv_id = ?", userID, cvID)
	return err
}

// GetSavedCVIDs returns the IDs of every CV the user bookmarked
func (r *Repository) GetSavedCVIDs(userID string) ([]string, error) {
	rows, err := r.db.Query(`SELECT cv_id FROM saved_cvs WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
