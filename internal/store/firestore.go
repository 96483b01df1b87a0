package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/spendlens/backend/internal/model"
)

// Firestore collection / document layout. Budget limits and the dynamic
// category list are single documents, matching the one-document shape
// the engine's budget contract expects.
const (
	expensesCollection      = "expenses"
	recurringCollection     = "recurringExpenses"
	notificationsCollection = "notifications"
	configCollection        = "config"
	budgetLimitsDoc         = "budgetLimits"
	categoriesDoc           = "categories"
)

// FirestoreStore implements the Store interface using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{client: client}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// Expense operations

func (s *FirestoreStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	_, err := s.client.Collection(expensesCollection).Doc(expense.ID).Set(ctx, expense)
	return err
}

func (s *FirestoreStore) GetExpense(ctx context.Context, expenseID string) (*model.Expense, error) {
	doc, err := s.client.Collection(expensesCollection).Doc(expenseID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}

	var expense model.Expense
	if err := doc.DataTo(&expense); err != nil {
		return nil, fmt.Errorf("parse expense: %w", err)
	}
	return &expense, nil
}

func (s *FirestoreStore) DeleteExpense(ctx context.Context, expenseID string) error {
	// Firestore deletes succeed on missing documents; the Exists
	// precondition makes them fail so missing IDs surface as ErrNotFound.
	_, err := s.client.Collection(expensesCollection).Doc(expenseID).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) || status.Code(err) == codes.FailedPrecondition {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *FirestoreStore) ListExpenses(ctx context.Context, startDate, endDate *time.Time) ([]*model.Expense, error) {
	query := s.client.Collection(expensesCollection).Query

	// NOTE: Field names must match Go struct field names (PascalCase),
	// that's how Firestore serializes the structs.
	if startDate != nil {
		query = query.Where("Date", ">=", *startDate)
	}
	if endDate != nil {
		query = query.Where("Date", "<=", *endDate)
	}
	query = query.OrderBy("Date", firestore.Asc).OrderBy(firestore.DocumentID, firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	out := make([]*model.Expense, 0, len(docs))
	for _, doc := range docs {
		var expense model.Expense
		if err := doc.DataTo(&expense); err != nil {
			return nil, fmt.Errorf("parse expense %s: %w", doc.Ref.ID, err)
		}
		out = append(out, &expense)
	}
	return out, nil
}

// Budget operations

func (s *FirestoreStore) GetBudgetLimits(ctx context.Context) (*model.BudgetLimits, error) {
	doc, err := s.client.Collection(configCollection).Doc(budgetLimitsDoc).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get budget limits: %w", err)
	}

	var limits model.BudgetLimits
	if err := doc.DataTo(&limits); err != nil {
		return nil, fmt.Errorf("parse budget limits: %w", err)
	}
	return &limits, nil
}

func (s *FirestoreStore) SetBudgetLimits(ctx context.Context, limits *model.BudgetLimits) error {
	_, err := s.client.Collection(configCollection).Doc(budgetLimitsDoc).Set(ctx, limits)
	return err
}

// Category operations

type categoriesDocument struct {
	Categories []string `firestore:"Categories"`
}

func (s *FirestoreStore) ListCategories(ctx context.Context) ([]string, error) {
	doc, err := s.client.Collection(configCollection).Doc(categoriesDoc).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categories: %w", err)
	}

	var cats categoriesDocument
	if err := doc.DataTo(&cats); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	return cats.Categories, nil
}

func (s *FirestoreStore) SaveCategories(ctx context.Context, categories []string) error {
	_, err := s.client.Collection(configCollection).Doc(categoriesDoc).Set(ctx, categoriesDocument{Categories: categories})
	return err
}

// Recurring expense operations

func (s *FirestoreStore) CreateRecurringExpense(ctx context.Context, re *model.RecurringExpense) error {
	_, err := s.client.Collection(recurringCollection).Doc(re.ID).Set(ctx, re)
	return err
}

func (s *FirestoreStore) UpdateRecurringExpense(ctx context.Context, re *model.RecurringExpense) error {
	_, err := s.client.Collection(recurringCollection).Doc(re.ID).Set(ctx, re)
	return err
}

func (s *FirestoreStore) DeleteRecurringExpense(ctx context.Context, reID string) error {
	_, err := s.client.Collection(recurringCollection).Doc(reID).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) || status.Code(err) == codes.FailedPrecondition {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *FirestoreStore) ListRecurringExpenses(ctx context.Context, statusFilter model.RecurringStatus) ([]*model.RecurringExpense, error) {
	query := s.client.Collection(recurringCollection).Query
	if statusFilter != "" {
		query = query.Where("Status", "==", string(statusFilter))
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}

	out := make([]*model.RecurringExpense, 0, len(docs))
	for _, doc := range docs {
		var re model.RecurringExpense
		if err := doc.DataTo(&re); err != nil {
			return nil, fmt.Errorf("parse recurring expense %s: %w", doc.Ref.ID, err)
		}
		out = append(out, &re)
	}
	return out, nil
}

// Notification operations

func (s *FirestoreStore) CreateNotification(ctx context.Context, n *model.Notification) error {
	_, err := s.client.Collection(notificationsCollection).Doc(n.ID).Set(ctx, n)
	return err
}

func (s *FirestoreStore) ListNotifications(ctx context.Context, unreadOnly bool) ([]*model.Notification, error) {
	query := s.client.Collection(notificationsCollection).Query
	if unreadOnly {
		query = query.Where("IsRead", "==", false)
	}
	query = query.OrderBy("CreatedAt", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	out := make([]*model.Notification, 0, len(docs))
	for _, doc := range docs {
		var n model.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, fmt.Errorf("parse notification %s: %w", doc.Ref.ID, err)
		}
		out = append(out, &n)
	}
	return out, nil
}

func (s *FirestoreStore) MarkNotificationRead(ctx context.Context, notificationID string) error {
	_, err := s.client.Collection(notificationsCollection).Doc(notificationID).Update(ctx, []firestore.Update{
		{Path: "IsRead", Value: true},
	})
	if err != nil && isNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (s *FirestoreStore) HasNotification(ctx context.Context, nType model.NotificationType, referenceID, metaKey, metaValue string, withinHours int) (bool, error) {
	cutoff := time.Now().Add(-time.Duration(withinHours) * time.Hour)

	query := s.client.Collection(notificationsCollection).
		Where("Type", "==", string(nType)).
		Where("ReferenceID", "==", referenceID).
		Where("CreatedAt", ">=", cutoff)

	// Stream rather than GetAll: the first match is enough.
	it := query.Documents(ctx)
	defer it.Stop()
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("query notifications: %w", err)
		}
		if metaKey == "" {
			return true, nil
		}
		var n model.Notification
		if err := doc.DataTo(&n); err != nil {
			continue
		}
		if n.Metadata[metaKey] == metaValue {
			return true, nil
		}
	}
}
