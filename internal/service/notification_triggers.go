package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/store"
)

// NotificationTrigger creates notifications for budget events.
type NotificationTrigger struct {
	store store.Store
}

func NewNotificationTrigger(store store.Store) *NotificationTrigger {
	return &NotificationTrigger{store: store}
}

// CheckBudgetThresholds creates a notification for every category whose
// spending crossed the warning threshold.
// Deduplication: only one notification per category+threshold per 30 days.
func (t *NotificationTrigger) CheckBudgetThresholds(ctx context.Context, warnings []model.Warning) {
	for _, w := range warnings {
		t.checkBudgetThreshold(ctx, w)
	}
}

func (t *NotificationTrigger) checkBudgetThreshold(ctx context.Context, w model.Warning) {
	threshold := "90"
	if w.Percentage >= 100 {
		threshold = "100"
	}

	// Dedup: check if we already sent this threshold notification within 30 days
	exists, err := t.store.HasNotification(ctx,
		model.NotificationBudgetThreshold,
		w.Category, "threshold", threshold, 720) // 720 hours = 30 days
	if err != nil {
		log.Printf("[NotificationTrigger] Failed to check for existing budget notification: %v", err)
		return
	}
	if exists {
		return
	}

	message := fmt.Sprintf("You've spent %.0f%% of your %s budget.", w.Percentage, w.Category)
	if w.Percentage >= 100 {
		message = fmt.Sprintf("You've exceeded your %s budget!", w.Category)
	}

	notification := &model.Notification{
		ID:            uuid.New().String(),
		Type:          model.NotificationBudgetThreshold,
		Title:         fmt.Sprintf("Budget Alert: %s", w.Category),
		Message:       message,
		IsRead:        false,
		ReferenceID:   w.Category,
		ReferenceType: "category",
		CreatedAt:     time.Now(),
		Metadata:      map[string]string{"threshold": threshold},
	}

	if err := t.store.CreateNotification(ctx, notification); err != nil {
		log.Printf("[NotificationTrigger] Failed to create budget threshold notification: %v", err)
	}
}

// ListNotifications returns notifications, newest first.
func (s *SpendService) ListNotifications(ctx context.Context, unreadOnly bool) ([]*model.Notification, error) {
	notifications, err := s.store.ListNotifications(ctx, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flags a notification as read.
func (s *SpendService) MarkNotificationRead(ctx context.Context, notificationID string) error {
	if err := s.store.MarkNotificationRead(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// EvaluateBudgetAlerts runs a threshold check for the given month and
// raises notifications for any category over the warning line.
func (s *SpendService) EvaluateBudgetAlerts(ctx context.Context, month time.Time, target string) error {
	status, err := s.MonthBudgetStatus(ctx, month, target)
	if err != nil {
		return err
	}
	NewNotificationTrigger(s.store).CheckBudgetThresholds(ctx, status.Warnings)
	return nil
}
