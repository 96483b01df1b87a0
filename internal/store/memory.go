package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/model"
)

// MemoryStore implements Store with in-memory storage. Used for local
// development and as the concrete store in most tests.
type MemoryStore struct {
	mu sync.RWMutex

	expenses      map[string]*model.Expense
	budgetLimits  *model.BudgetLimits
	categories    []string
	recurring     map[string]*model.RecurringExpense
	notifications map[string]*model.Notification
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		expenses:      make(map[string]*model.Expense),
		recurring:     make(map[string]*model.RecurringExpense),
		notifications: make(map[string]*model.Notification),
	}
}

// Expense operations

func (m *MemoryStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MemoryStore) GetExpense(ctx context.Context, expenseID string) (*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	expense, ok := m.expenses[expenseID]
	if !ok {
		return nil, ErrNotFound
	}
	return expense, nil
}

func (m *MemoryStore) DeleteExpense(ctx context.Context, expenseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.expenses[expenseID]; !ok {
		return ErrNotFound
	}
	delete(m.expenses, expenseID)
	return nil
}

func (m *MemoryStore) ListExpenses(ctx context.Context, startDate, endDate *time.Time) ([]*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.Expense
	for _, e := range m.expenses {
		if startDate != nil && e.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && e.Date.After(*endDate) {
			continue
		}
		out = append(out, e)
	}

	// Deterministic order: date ascending, id as tie break
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Budget operations

func (m *MemoryStore) GetBudgetLimits(ctx context.Context) (*model.BudgetLimits, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.budgetLimits == nil {
		return nil, ErrNotFound
	}
	return m.budgetLimits, nil
}

func (m *MemoryStore) SetBudgetLimits(ctx context.Context, limits *model.BudgetLimits) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.budgetLimits = limits
	return nil
}

// Category operations

func (m *MemoryStore) ListCategories(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *MemoryStore) SaveCategories(ctx context.Context, categories []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.categories = make([]string, len(categories))
	copy(m.categories, categories)
	return nil
}

// Recurring expense operations

func (m *MemoryStore) CreateRecurringExpense(ctx context.Context, re *model.RecurringExpense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if re.ID == "" {
		re.ID = uuid.New().String()
	}
	m.recurring[re.ID] = re
	return nil
}

func (m *MemoryStore) UpdateRecurringExpense(ctx context.Context, re *model.RecurringExpense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.recurring[re.ID]; !ok {
		return ErrNotFound
	}
	m.recurring[re.ID] = re
	return nil
}

func (m *MemoryStore) DeleteRecurringExpense(ctx context.Context, reID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.recurring[reID]; !ok {
		return ErrNotFound
	}
	delete(m.recurring, reID)
	return nil
}

func (m *MemoryStore) ListRecurringExpenses(ctx context.Context, status model.RecurringStatus) ([]*model.RecurringExpense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.RecurringExpense
	for _, re := range m.recurring {
		if status != "" && re.Status != status {
			continue
		}
		out = append(out, re)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Notification operations

func (m *MemoryStore) CreateNotification(ctx context.Context, n *model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	m.notifications[n.ID] = n
	return nil
}

func (m *MemoryStore) ListNotifications(ctx context.Context, unreadOnly bool) ([]*model.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.Notification
	for _, n := range m.notifications {
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	// Newest first
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemoryStore) MarkNotificationRead(ctx context.Context, notificationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notifications[notificationID]
	if !ok {
		return ErrNotFound
	}
	n.IsRead = true
	return nil
}

func (m *MemoryStore) HasNotification(ctx context.Context, nType model.NotificationType, referenceID, metaKey, metaValue string, withinHours int) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cutoff := time.Now().Add(-time.Duration(withinHours) * time.Hour)
	for _, n := range m.notifications {
		if n.Type != nType || n.ReferenceID != referenceID {
			continue
		}
		if n.CreatedAt.Before(cutoff) {
			continue
		}
		if metaKey != "" && n.Metadata[metaKey] != metaValue {
			continue
		}
		return true, nil
	}
	return false, nil
}
