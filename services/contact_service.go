package services

import (
	"fmt"
	"kartvizid/database"
	"kartvizid/models"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestStatusView tells an employer where they stand with a candidate
type RequestStatusView struct {
	Status    models.RequestStatus `json:"status,omitempty"`
	RequestID string               `json:"request_id,omitempty"`
	CanSend   bool                 `json:"can_send"`
}

// ContactService implements the consent workflow between employers and
// candidates: an employer asks, the candidate approves or rejects, and the
// employer may withdraw while the request is pending.
type ContactService struct {
	repo   ContactRepository
	logger *slog.Logger
}

// NewContactService creates a new contact service
func NewContactService(repo ContactRepository, logger *slog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// Create sends a contact request for a CV on behalf of an employer
func (cs *ContactService) Create(requesterID string, req models.CreateContactRequest) (*models.ContactRequest, error) {
	profile, err := cs.repo.GetProfile(requesterID)
	if err != nil {
		return nil, err
	}
	if !profile.IsEmployer() {
		return nil, ErrNotEmployer
	}

	company, err := cs.repo.GetCompanyByUser(requesterID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyRequired
	}

	cv, err := cs.repo.GetCV(req.CVID)
	if err != nil {
		return nil, err
	}
	if cv == nil || !cv.IsActive {
		return nil, ErrCVNotFound
	}
	if cv.UserID == requesterID {
		return nil, ErrOwnCV
	}

	latest, err := cs.repo.GetLatestRequestBetween(requesterID, cv.UserID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		switch latest.Status {
		case models.RequestPending:
			return nil, ErrDuplicateRequest
		case models.RequestApproved:
			return nil, ErrAlreadyApproved
		}
	}

	now := time.Now()
	request := &models.ContactRequest{
		ID:           uuid.New().String(),
		RequesterID:  requesterID,
		TargetUserID: cv.UserID,
		CVID:         cv.ID,
		CompanyID:    company.ID,
		Message:      strings.TrimSpace(req.Message),
		Status:       models.RequestPending,
		CreatedAt:    now,
		UpdatedAt:    now,
		CompanyName:  company.Name,
		CVName:       cv.Name,
		Profession:   cv.Profession,
	}
	notification := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    cv.UserID,
		Type:      models.NotificationContactRequest,
		Title:     "Yeni iletişim talebi",
		Message:   fmt.Sprintf("%s iletişim bilgilerinizi görmek istiyor.", company.Name),
		RelatedID: request.ID,
		CreatedAt: now,
	}

	if err := cs.repo.CreateContactRequest(request, notification); err != nil {
		// Lost a race against a concurrent request for the same pair
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}

	cs.logger.Info("contact request created",
		"request_id", request.ID, "requester_id", requesterID, "cv_id", cv.ID)
	return request, nil
}

// Cancel withdraws a pending request; only its sender may do so
func (cs *ContactService) Cancel(userID, requestID string) (*models.ContactRequest, error) {
	request, err := cs.loadRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.RequesterID != userID {
		return nil, ErrForbidden
	}
	if request.Status != models.RequestPending {
		return nil, ErrRequestNotPending
	}

	from := request.CompanyName
	if from == "" {
		from = "Bir işveren"
	}
	notification := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    request.TargetUserID,
		Type:      models.NotificationRequestCancelled,
		Title:     "İletişim talebi geri çekildi",
		Message:   fmt.Sprintf("%s iletişim talebini geri çekti.", from),
		RelatedID: request.ID,
		CreatedAt: time.Now(),
	}

	return cs.transition(request, models.RequestCancelled, notification)
}

// Respond approves or rejects a pending request; only its target may do so
func (cs *ContactService) Respond(userID, requestID string, approve bool) (*models.ContactRequest, error) {
	request, err := cs.loadRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.TargetUserID != userID {
		return nil, ErrForbidden
	}
	if request.Status != models.RequestPending {
		return nil, ErrRequestNotPending
	}

	status := models.RequestRejected
	notification := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    request.RequesterID,
		Type:      models.NotificationRequestRejected,
		Title:     "İletişim talebi reddedildi",
		Message:   fmt.Sprintf("%s iletişim talebinizi reddetti.", candidateName(request)),
		RelatedID: request.ID,
		CreatedAt: time.Now(),
	}
	if approve {
		status = models.RequestApproved
		notification.Type = models.NotificationRequestApproved
		notification.Title = "İletişim talebi onaylandı"
		notification.Message = fmt.Sprintf("%s iletişim bilgilerini sizinle paylaştı.", candidateName(request))
	}

	return cs.transition(request, status, notification)
}

func (cs *ContactService) transition(request *models.ContactRequest, status models.RequestStatus, notification *models.Notification) (*models.ContactRequest, error) {
	changed, err := cs.repo.TransitionContactRequest(request.ID, status, notification)
	if err != nil {
		return nil, err
	}
	if !changed {
		// Someone else moved it first
		return nil, ErrRequestNotPending
	}

	now := time.Now()
	request.Status = status
	request.UpdatedAt = now
	if status == models.RequestApproved || status == models.RequestRejected {
		request.RespondedAt = &now
	}

	cs.logger.Info("contact request updated", "request_id", request.ID, "status", status)
	return request, nil
}

func (cs *ContactService) loadRequest(requestID string) (*models.ContactRequest, error) {
	request, err := cs.repo.GetContactRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	return request, nil
}

// ListSent lists the caller's outgoing requests
func (cs *ContactService) ListSent(userID string) ([]models.ContactRequest, error) {
	return cs.repo.ListSentRequests(userID)
}

// ListReceived lists the caller's incoming requests
func (cs *ContactService) ListReceived(userID string) ([]models.ContactRequest, error) {
	return cs.repo.ListReceivedRequests(userID)
}

// StatusFor reports the latest request between the caller and the owner of cvID
func (cs *ContactService) StatusFor(userID, cvID string) (*RequestStatusView, error) {
	cv, err := cs.repo.GetCV(cvID)
	if err != nil {
		return nil, err
	}
	if cv == nil {
		return nil, ErrCVNotFound
	}
	if cv.UserID == userID {
		return &RequestStatusView{CanSend: false}, nil
	}

	latest, err := cs.repo.GetLatestRequestBetween(userID, cv.UserID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &RequestStatusView{CanSend: true}, nil
	}

	return &RequestStatusView{
		Status:    latest.Status,
		RequestID: latest.ID,
		CanSend:   latest.Status == models.RequestRejected || latest.Status == models.RequestCancelled,
	}, nil
}

func candidateName(request *models.ContactRequest) string {
	if request.CVName != "" {
		return request.CVName
	}
	return "Aday"
}
