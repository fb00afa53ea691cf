package services

import (
	"kartvizid/listing"
	"kartvizid/models"
)

const feedNotificationLimit = 100

// NotificationService builds the notification panel and dashboard counters
type NotificationService struct {
	repo NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Feed merges pending incoming contact requests with generic notifications
func (ns *NotificationService) Feed(userID string) ([]models.NotificationItem, error) {
	requests, err := ns.repo.ListReceivedRequests(userID)
	if err != nil {
		return nil, err
	}
	return ns.mergeFeed(userID, requests)
}

func (ns *NotificationService) mergeFeed(userID string, received []models.ContactRequest) ([]models.NotificationItem, error) {
	notifications, err := ns.repo.ListNotifications(userID, feedNotificationLimit)
	if err != nil {
		return nil, err
	}
	return listing.MergeFeed(received, notifications), nil
}

// MarkRead marks one notification as read
func (ns *NotificationService) MarkRead(userID, notificationID string) error {
	updated, err := ns.repo.MarkNotificationRead(userID, notificationID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every notification of the caller as read
func (ns *NotificationService) MarkAllRead(userID string) (int64, error) {
	return ns.repo.MarkAllNotificationsRead(userID)
}

// Delete removes one notification
func (ns *NotificationService) Delete(userID, notificationID string) error {
	deleted, err := ns.repo.DeleteNotification(userID, notificationID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotificationNotFound
	}
	return nil
}

// Dashboard computes the caller's counters
func (ns *NotificationService) Dashboard(userID string) (listing.DashboardStats, error) {
	received, err := ns.repo.ListReceivedRequests(userID)
	if err != nil {
		return listing.DashboardStats{}, err
	}

	feed, err := ns.mergeFeed(userID, received)
	if err != nil {
		return listing.DashboardStats{}, err
	}

	sent, err := ns.repo.ListSentRequests(userID)
	if err != nil {
		return listing.DashboardStats{}, err
	}

	cv, err := ns.repo.GetCVByUser(userID)
	if err != nil {
		return listing.DashboardStats{}, err
	}

	saved, err := ns.repo.GetSavedCVIDs(userID)
	if err != nil {
		return listing.DashboardStats{}, err
	}

	return listing.ComputeDashboardStats(cv, sent, received, feed, len(saved)), nil
}
