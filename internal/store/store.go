package store

import (
	"context"
	"errors"
	"time"

	"github.com/spendlens/backend/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence surface the engine and service depend
// on. The core treats it as an external collaborator: it issues
// date-range reads and does all other filtering itself.
type Store interface {
	// Expense operations. Expenses are immutable after creation except
	// for deletion by id; there is deliberately no update. Get and
	// Delete return ErrNotFound for unknown ids on every backend.
	CreateExpense(ctx context.Context, expense *model.Expense) error
	GetExpense(ctx context.Context, expenseID string) (*model.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
	ListExpenses(ctx context.Context, startDate, endDate *time.Time) ([]*model.Expense, error)

	// Budget limits live in a single document. GetBudgetLimits returns
	// ErrNotFound when none has been configured yet.
	GetBudgetLimits(ctx context.Context) (*model.BudgetLimits, error)
	SetBudgetLimits(ctx context.Context, limits *model.BudgetLimits) error

	// Dynamic category list. May be empty, in which case callers fall
	// back to the fixed built-in set.
	ListCategories(ctx context.Context) ([]string, error)
	SaveCategories(ctx context.Context, categories []string) error

	// Recurring expense operations.
	CreateRecurringExpense(ctx context.Context, re *model.RecurringExpense) error
	UpdateRecurringExpense(ctx context.Context, re *model.RecurringExpense) error
	DeleteRecurringExpense(ctx context.Context, reID string) error
	ListRecurringExpenses(ctx context.Context, status model.RecurringStatus) ([]*model.RecurringExpense, error)

	// Notification operations.
	CreateNotification(ctx context.Context, n *model.Notification) error
	ListNotifications(ctx context.Context, unreadOnly bool) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	// HasNotification reports whether a notification of the given type,
	// reference and metadata key/value was created within the last
	// withinHours hours. Used for deduplication.
	HasNotification(ctx context.Context, nType model.NotificationType, referenceID, metaKey, metaValue string, withinHours int) (bool, error)
}
