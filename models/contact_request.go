package models

import "time"

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

type ContactRequest struct {
	ID           string        `json:"id"`
	RequesterID  string        `json:"requester_id"`
	TargetUserID string        `json:"target_user_id"`
	CVID         string        `json:"cv_id"`
	CompanyID    string        `json:"company_id"`
	Message      string        `json:"message"`
	Status       RequestStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	RespondedAt  *time.Time    `json:"responded_at,omitempty"`

	// Joined for display, not stored on the row
	CompanyName string `json:"company_name,omitempty"`
	CVName      string `json:"cv_name,omitempty"`
	Profession  string `json:"profession,omitempty"`
}

type CreateContactRequest struct {
	CVID    string `json:"cv_id" validate:"required,uuid"`
	Message string `json:"message" validate:"max=500"`
}

type CancelContactRequest struct {
	RequestID string `json:"request_id" validate:"required,uuid"`
}

type RespondContactRequest struct {
	RequestID string `json:"request_id" validate:"required,uuid"`
	Approve   bool   `json:"approve"`
}

type CVViewRequest struct {
	CVID string `json:"cv_id" validate:"required,uuid"`
}
