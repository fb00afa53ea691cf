package database

import (
	"database/sql"
	"kartvizid/models"
	"time"
)

// ==================== NOTIFICATION OPERATIONS ====================

func insertNotification(tx *sql.Tx, n *models.Notification) error {
	_, err := tx.Exec(`
		INSERT INTO notifications (id, user_id, type, title, message, related_id, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, n.ID, n.UserID, string(n.Type), n.Title, n.Message, n.RelatedID, boolToInt(n.IsRead), n.CreatedAt)
	return err
}

// CreateNotification stores a single notification
func (r *Repository) CreateNotification(n *models.Notification) error {
	return r.withTx(func(tx *sql.Tx) error {
		return insertNotification(tx, n)
	})
}

// ListNotifications returns a user's notifications, newest first
func (r *Repository) ListNotifications(userID string, limit int) ([]models.Notification, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, type, title, message, related_id, is_read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&n.RelatedID, &n.IsRead, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkNotificationRead marks one of the user's notifications as read
func (r *Repository) MarkNotificationRead(userID, notificationID string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE notifications SET is_read = 1
		WHERE id = ? AND user_id = ?
	`, notificationID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// MarkAllNotificationsRead marks every unread notification of the user as read
func (r *Repository) MarkAllNotificationsRead(userID string) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE notifications SET is_read = 1
		WHERE user_id = ? AND is_read = 0
	`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteNotification removes one of the user's notifications
func (r *Repository) DeleteNotification(userID, notificationID string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM notifications WHERE id = ? AND user_id = ?", notificationID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// PurgeReadNotifications deletes read notifications created before cutoff
func (r *Repository) PurgeReadNotifications(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec(`
		DELETE FROM notifications
		WHERE is_read = 1 AND created_at < ?
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
