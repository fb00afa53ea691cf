package database

import (
	"database/sql"
	"kartvizid/models"
	"time"
)

// ==================== CONTACT REQUEST OPERATIONS ====================

// Company and CV names are joined in for display
const contactRequestSelect = `
	SELECT r.id, r.requester_id, r.target_user_id, r.cv_id, r.company_id,
	       r.message, r.status, r.created_at, r.updated_at, r.responded_at,
	       COALESCE(co.name, ''), COALESCE(c.name, ''), COALESCE(c.profession, '')
	FROM contact_requests r
	LEFT JOIN companies co ON co.id = r.company_id
	LEFT JOIN cvs c ON c.id = r.cv_id
`

func scanContactRequest(row rowScanner) (*models.ContactRequest, error) {
	var req models.ContactRequest
	var respondedAt sql.NullTime

	err := row.Scan(
		&req.ID, &req.RequesterID, &req.TargetUserID, &req.CVID, &req.CompanyID,
		&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt, &respondedAt,
		&req.CompanyName, &req.CVName, &req.Profession,
	)
	if err != nil {
		return nil, err
	}

	if respondedAt.Valid {
		req.RespondedAt = &respondedAt.Time
	}
	return &req, nil
}

func (r *Repository) queryContactRequests(query string, args ...interface{}) ([]models.ContactRequest, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.ContactRequest, 0)
	for rows.Next() {
		req, err := scanContactRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}

	return requests, rows.Err()
}

// GetContactRequest retrieves a contact request by ID
func (r *Repository) GetContactRequest(requestID string) (*models.ContactRequest, error) {
	req, err := scanContactRequest(r.db.QueryRow(contactRequestSelect+` WHERE r.id = ?`, requestID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return req, err
}

// GetLatestRequestBetween returns the most recent request from requester to target, if any
func (r *Repository) GetLatestRequestBetween(requesterID, targetUserID string) (*models.ContactRequest, error) {
	req, err := scanContactRequest(r.db.QueryRow(contactRequestSelect+`
		WHERE r.requester_id = ? AND r.target_user_id = ?
		ORDER BY r.created_at DESC
		LIMIT 1
	`, requesterID, targetUserID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return req, err
}

// HasApprovedRequest reports whether requester holds an approved request for target
func (r *Repository) HasApprovedRequest(requesterID, targetUserID string) (bool, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM contact_requests
		WHERE requester_id = ? AND target_user_id = ? AND status = ?
	`, requesterID, targetUserID, string(models.RequestApproved)).Scan(&count)
	return count > 0, err
}

// ListSentRequests lists requests an employer has sent, newest first
func (r *Repository) ListSentRequests(requesterID string) ([]models.ContactRequest, error) {
	return r.queryContactRequests(contactRequestSelect+`
		WHERE r.requester_id = ?
		ORDER BY r.created_at DESC
	`, requesterID)
}

// ListReceivedRequests lists requests addressed to a job seeker, newest first
func (r *Repository) ListReceivedRequests(targetUserID string) ([]models.ContactRequest, error) {
	return r.queryContactRequests(contactRequestSelect+`
		WHERE r.target_user_id = ? AND r.status != ?
		ORDER BY r.created_at DESC
	`, targetUserID, string(models.RequestCancelled))
}

// CreateContactRequest inserts a pending request together with the
// notification for its target
func (r *Repository) CreateContactRequest(req *models.ContactRequest, notification *models.Notification) error {
	return r.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO contact_requests (id, requester_id, target_user_id, cv_id, company_id,
				message, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			req.ID, req.RequesterID, req.TargetUserID, req.CVID, req.CompanyID,
			req.Message, string(req.Status), req.CreatedAt, req.UpdatedAt,
		)
		if err != nil {
			return err
		}
		return insertNotification(tx, notification)
	})
}

// TransitionContactRequest moves a pending request to status and records the
// notification for the other party. It reports false when the request was no
// longer pending.
func (r *Repository) TransitionContactRequest(requestID string, status models.RequestStatus, notification *models.Notification) (bool, error) {
	var changed bool

	err := r.withTx(func(tx *sql.Tx) error {
		now := time.Now()
		var respondedAt interface{}
		if status == models.RequestApproved || status == models.RequestRejected {
			respondedAt = now
		}

		res, err := tx.Exec(`
			UPDATE contact_requests SET
				status = ?,
				updated_at = ?,
				responded_at = COALESCE(?, responded_at)
			WHERE id = ? AND status = ?
		`, string(status), now, respondedAt, requestID, string(models.RequestPending))
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		changed = true

		// The request no longer needs an answer, so its prompt is settled
		if _, err := tx.Exec(
			`UPDATE notifications SET is_read = 1 WHERE related_id = ? AND type = ?`,
			requestID, string(models.NotificationContactRequest),
		); err != nil {
			return err
		}

		if notification == nil {
			return nil
		}
		return insertNotification(tx, notification)
	})

	return changed, err
}
