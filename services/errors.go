package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("permission denied")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotEmployer     = errors.New("permission denied: employer account required")

	// CV errors
	ErrCVNotFound = errors.New("cv not found")
	ErrOwnCV      = errors.New("cannot act on own cv")

	// Company errors
	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyRequired = errors.New("company profile required")

	// Contact request errors
	ErrRequestNotFound   = errors.New("contact request not found")
	ErrDuplicateRequest  = errors.New("duplicate pending contact request")
	ErrAlreadyApproved   = errors.New("contact request already approved")
	ErrRequestNotPending = errors.New("contact request is not pending")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")
)
