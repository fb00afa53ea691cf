package listing

import (
	"fmt"
	"sort"

	"kartvizid/models"
)

// MergeFeed combines the pending contact requests a user received with their
// generic notifications into one list, newest first. Requests that are no
// longer pending are left out since their outcome already produced a
// notification. A contact_request notification pointing at a request that is
// already in the feed is dropped so the request shows up once.
func MergeFeed(requests []models.ContactRequest, notifications []models.Notification) []models.NotificationItem {
	items := make([]models.NotificationItem, 0, len(requests)+len(notifications))

	listed := make(map[string]bool, len(requests))
	for i := range requests {
		req := requests[i]
		if req.Status != models.RequestPending {
			continue
		}
		listed[req.ID] = true
		items = append(items, requestItem(req))
	}

	for _, n := range notifications {
		if n.Type == models.NotificationContactRequest && listed[n.RelatedID] {
			continue
		}
		items = append(items, models.NotificationItem{
			ID:        n.ID,
			Kind:      models.ItemNotification,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			RelatedID: n.RelatedID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items
}

func requestItem(req models.ContactRequest) models.NotificationItem {
	from := req.CompanyName
	if from == "" {
		from = "Bir işveren"
	}

	return models.NotificationItem{
		ID:        req.ID,
		Kind:      models.ItemContactRequest,
		Type:      models.NotificationContactRequest,
		Title:     "Yeni iletişim talebi",
		Message:   fmt.Sprintf("%s iletişim bilgilerinizi görmek istiyor.", from),
		RelatedID: req.CVID,
		CreatedAt: req.CreatedAt,
		Request:   &req,
	}
}

// UnreadCount counts the entries still needing attention: unread
// notifications and every pending request
func UnreadCount(items []models.NotificationItem) int {
	count := 0
	for _, item := range items {
		if item.Kind == models.ItemContactRequest || !item.IsRead {
			count++
		}
	}
	return count
}
