package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/service"
	"github.com/spendlens/backend/internal/store"
)

// Handler exposes the spending service over JSON HTTP.
type Handler struct {
	svc *service.SpendService
}

func NewHandler(svc *service.SpendService) *Handler {
	return &Handler{svc: svc}
}

// Routes registers all endpoints on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /api/expenses", h.CreateExpense)
	mux.HandleFunc("GET /api/expenses", h.ListExpenses)
	mux.HandleFunc("DELETE /api/expenses/{id}", h.DeleteExpense)

	mux.HandleFunc("GET /api/categories", h.ListCategories)
	mux.HandleFunc("GET /api/analytics/categories", h.CategorySpending)
	mux.HandleFunc("GET /api/analytics/months", h.MonthlyTotals)
	mux.HandleFunc("GET /api/analytics/heatmap", h.DailyHeatmap)

	mux.HandleFunc("GET /api/budget", h.GetBudgetLimits)
	mux.HandleFunc("PUT /api/budget", h.SetBudgetLimits)
	mux.HandleFunc("GET /api/budget/status", h.BudgetStatus)
	mux.HandleFunc("POST /api/budget/alerts", h.EvaluateBudgetAlerts)

	mux.HandleFunc("POST /api/recurring", h.CreateRecurring)
	mux.HandleFunc("GET /api/recurring", h.ListRecurring)
	mux.HandleFunc("DELETE /api/recurring/{id}", h.DeleteRecurring)
	mux.HandleFunc("POST /api/recurring/process", h.ProcessRecurring)

	mux.HandleFunc("GET /api/notifications", h.ListNotifications)
	mux.HandleFunc("POST /api/notifications/{id}/read", h.MarkNotificationRead)

	return mux
}

// CreateExpense handles POST /api/expenses
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var in service.AddExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	expense, err := h.svc.AddExpense(r.Context(), in)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[API] Failed to create expense: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to create expense")
		return
	}
	WriteJSON(w, http.StatusCreated, expense)
}

// ListExpenses handles GET /api/expenses
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	expenses, err := h.svc.ListExpenses(r.Context(), startDate, endDate)
	if err != nil {
		log.Printf("[API] Failed to list expenses: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list expenses")
		return
	}
	if expenses == nil {
		expenses = []*model.Expense{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"expenses": expenses,
		"count":    len(expenses),
	})
}

// DeleteExpense handles DELETE /api/expenses/{id}
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.DeleteExpense(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Expense not found")
			return
		}
		log.Printf("[API] Failed to delete expense %s: %v", id, err)
		WriteError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": model.FixedCategories(),
		"colors":     model.CategoryColors,
	})
}

// CategorySpending handles GET /api/analytics/categories
func (h *Handler) CategorySpending(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := parseDateRange(w, r)
	if !ok {
		return
	}
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}

	breakdown, err := h.svc.CategorySpending(r.Context(), r.URL.Query().Get("currency"), filter, startDate, endDate)
	if err != nil {
		log.Printf("[API] Failed to compute category spending: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to compute category spending")
		return
	}
	WriteJSON(w, http.StatusOK, breakdown)
}

// MonthlyTotals handles GET /api/analytics/months
func (h *Handler) MonthlyTotals(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	months, unconverted, err := h.svc.MonthlyTotals(r.Context(), r.URL.Query().Get("currency"), startDate, endDate)
	if err != nil {
		log.Printf("[API] Failed to compute monthly totals: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to compute monthly totals")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"months":      months,
		"unconverted": unconverted,
	})
}

// DailyHeatmap handles GET /api/analytics/heatmap
func (h *Handler) DailyHeatmap(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}

	heatmap, err := h.svc.DailyHeatmap(r.Context(), year, r.URL.Query().Get("currency"))
	if err != nil {
		log.Printf("[API] Failed to build heatmap: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to build heatmap")
		return
	}
	WriteJSON(w, http.StatusOK, heatmap)
}

// GetBudgetLimits handles GET /api/budget
func (h *Handler) GetBudgetLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := h.svc.GetBudgetLimits(r.Context())
	if err != nil {
		log.Printf("[API] Failed to get budget limits: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to get budget limits")
		return
	}
	WriteJSON(w, http.StatusOK, limits)
}

// SetBudgetLimits handles PUT /api/budget
func (h *Handler) SetBudgetLimits(w http.ResponseWriter, r *http.Request) {
	var limits model.BudgetLimits
	if err := json.NewDecoder(r.Body).Decode(&limits); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.SetBudgetLimits(r.Context(), &limits); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, &limits)
}

// BudgetStatus handles GET /api/budget/status
func (h *Handler) BudgetStatus(w http.ResponseWriter, r *http.Request) {
	month := time.Now()
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
			return
		}
		month = parsed
	}

	status, err := h.svc.MonthBudgetStatus(r.Context(), month, r.URL.Query().Get("currency"))
	if err != nil {
		log.Printf("[API] Failed to compute budget status: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to compute budget status")
		return
	}
	WriteJSON(w, http.StatusOK, status)
}

// EvaluateBudgetAlerts handles POST /api/budget/alerts
// Designed to be called by a scheduler.
func (h *Handler) EvaluateBudgetAlerts(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EvaluateBudgetAlerts(r.Context(), time.Now(), r.URL.Query().Get("currency")); err != nil {
		log.Printf("[API] Failed to evaluate budget alerts: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to evaluate budget alerts")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "evaluated"})
}

// CreateRecurring handles POST /api/recurring
func (h *Handler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	var rt model.RecurringExpense
	if err := json.NewDecoder(r.Body).Decode(&rt); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.CreateRecurringExpense(r.Context(), &rt); err != nil {
		if isValidationError(err) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[API] Failed to create recurring expense: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to create recurring expense")
		return
	}
	WriteJSON(w, http.StatusCreated, &rt)
}

// ListRecurring handles GET /api/recurring
func (h *Handler) ListRecurring(w http.ResponseWriter, r *http.Request) {
	status := model.RecurringStatus(r.URL.Query().Get("status"))
	rts, err := h.svc.ListRecurringExpenses(r.Context(), status)
	if err != nil {
		log.Printf("[API] Failed to list recurring expenses: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list recurring expenses")
		return
	}
	if rts == nil {
		rts = []*model.RecurringExpense{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"recurring": rts,
		"count":     len(rts),
	})
}

// DeleteRecurring handles DELETE /api/recurring/{id}
func (h *Handler) DeleteRecurring(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.DeleteRecurringExpense(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Recurring expense not found")
			return
		}
		log.Printf("[API] Failed to delete recurring expense %s: %v", id, err)
		WriteError(w, http.StatusInternalServerError, "Failed to delete recurring expense")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ProcessRecurring handles POST /api/recurring/process
// Designed to be called by a scheduler.
func (h *Handler) ProcessRecurring(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.ProcessRecurringExpenses(r.Context(), time.Now())
	if err != nil {
		log.Printf("[API] Failed to process recurring expenses: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to process recurring expenses")
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}

// ListNotifications handles GET /api/notifications
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread_only") == "true"
	notifications, err := h.svc.ListNotifications(r.Context(), unreadOnly)
	if err != nil {
		log.Printf("[API] Failed to list notifications: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list notifications")
		return
	}
	if notifications == nil {
		notifications = []*model.Notification{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// MarkNotificationRead handles POST /api/notifications/{id}/read
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.MarkNotificationRead(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Notification not found")
			return
		}
		log.Printf("[API] Failed to mark notification %s read: %v", id, err)
		WriteError(w, http.StatusInternalServerError, "Failed to mark notification read")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseDateRange reads optional start_date/end_date query parameters.
func parseDateRange(w http.ResponseWriter, r *http.Request) (*time.Time, *time.Time, bool) {
	query := r.URL.Query()
	var startDate, endDate *time.Time

	if s := query.Get("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid start_date format")
			return nil, nil, false
		}
		startDate = &parsed
	}
	if s := query.Get("end_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid end_date format")
			return nil, nil, false
		}
		// Inclusive end of day.
		end := parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		endDate = &end
	}
	return startDate, endDate, true
}

// parseFilter reads the optional record filter query parameters.
func parseFilter(w http.ResponseWriter, r *http.Request) (model.ExpenseFilter, bool) {
	query := r.URL.Query()
	var filter model.ExpenseFilter

	filter.Text = query.Get("q")
	if s := query.Get("min_amount"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid min_amount")
			return filter, false
		}
		filter.MinAmount = &v
	}
	if s := query.Get("max_amount"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid max_amount")
			return filter, false
		}
		filter.MaxAmount = &v
	}
	if s := query.Get("date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid date format")
			return filter, false
		}
		filter.Date = &parsed
	}
	return filter, true
}

func isValidationError(err error) bool {
	return errors.Is(err, model.ErrInvalidAmount) ||
		errors.Is(err, model.ErrEmptyDescription) ||
		errors.Is(err, model.ErrEmptyCategory) ||
		errors.Is(err, model.ErrEmptyCurrency)
}
