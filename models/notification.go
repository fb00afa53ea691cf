package models

import "time"

type NotificationType string

const (
	NotificationContactRequest   NotificationType = "contact_request"
	NotificationRequestApproved  NotificationType = "request_approved"
	NotificationRequestRejected  NotificationType = "request_rejected"
	NotificationRequestCancelled NotificationType = "request_cancelled"
	NotificationCVSaved          NotificationType = "cv_saved"
	NotificationSystem           NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	RelatedID string           `json:"related_id,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// ItemKind tells the two sources of the merged feed apart
type ItemKind string

const (
	ItemContactRequest ItemKind = "contact_request"
	ItemNotification   ItemKind = "notification"
)

// NotificationItem is one entry of the merged notification feed
type NotificationItem struct {
	ID        string           `json:"id"`
	Kind      ItemKind         `json:"kind"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	RelatedID string           `json:"related_id,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`

	Request *ContactRequest `json:"request,omitempty"`
}
