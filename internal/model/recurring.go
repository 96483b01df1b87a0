package model

import "time"

// RecurringStatus is the lifecycle state of a recurring expense.
type RecurringStatus string

const (
	RecurringStatusActive RecurringStatus = "active"
	RecurringStatusEnded  RecurringStatus = "ended"
)

// Frequency is how often a recurring expense repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringExpense is a template that the processor materializes into
// Expense records each time it comes due.
type RecurringExpense struct {
	ID               string          `json:"id" firestore:"ID"`
	Description      string          `json:"description" firestore:"Description"`
	Category         string          `json:"category" firestore:"Category"`
	OriginalAmount   float64         `json:"originalAmount" firestore:"OriginalAmount"`
	OriginalCurrency string          `json:"originalCurrency" firestore:"OriginalCurrency"`
	Frequency        Frequency       `json:"frequency" firestore:"Frequency"`
	StartDate        time.Time       `json:"startDate" firestore:"StartDate"`
	EndDate          time.Time       `json:"endDate,omitempty" firestore:"EndDate"`
	NextOccurrence   time.Time       `json:"nextOccurrence" firestore:"NextOccurrence"`
	Status           RecurringStatus `json:"status" firestore:"Status"`
	CreatedAt        time.Time       `json:"createdAt" firestore:"CreatedAt"`
	UpdatedAt        time.Time       `json:"updatedAt" firestore:"UpdatedAt"`
}

// NotificationType discriminates persisted notification records.
type NotificationType string

const (
	NotificationBudgetThreshold NotificationType = "budget_threshold"
)

// Notification is a persisted alert record. Creating one is the end of
// the engine's responsibility; delivery belongs to whoever reads them.
type Notification struct {
	ID            string            `json:"id" firestore:"ID"`
	Type          NotificationType  `json:"type" firestore:"Type"`
	Title         string            `json:"title" firestore:"Title"`
	Message       string            `json:"message" firestore:"Message"`
	IsRead        bool              `json:"isRead" firestore:"IsRead"`
	ReferenceID   string            `json:"referenceId,omitempty" firestore:"ReferenceID"`
	ReferenceType string            `json:"referenceType,omitempty" firestore:"ReferenceType"`
	Metadata      map[string]string `json:"metadata,omitempty" firestore:"Metadata"`
	CreatedAt     time.Time         `json:"createdAt" firestore:"CreatedAt"`
}
