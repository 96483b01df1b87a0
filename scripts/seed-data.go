//go:build ignore
// +build ignore

// Seeds a running server with demo expenses, budget limits and a
// recurring template. Run against a local server:
//
//	USE_MEMORY_STORE=true go run ./cmd/server &
//	go run scripts/seed-data.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8111"
	}

	log.Printf("Seeding demo data via %s", apiURL)

	now := time.Now()
	expenses := []map[string]interface{}{
		{"description": "Groceries", "category": "Food & Dining", "originalAmount": 84.20, "originalCurrency": "USD", "date": now.AddDate(0, 0, -1)},
		{"description": "Dinner out", "category": "Food & Dining", "originalAmount": 50.0, "originalCurrency": "EUR", "date": now.AddDate(0, 0, -2)},
		{"description": "Bus ticket", "category": "Transportation", "originalAmount": 3.50, "originalCurrency": "USD", "date": now.AddDate(0, 0, -2)},
		{"description": "Monthly train pass", "category": "Transportation", "originalAmount": 120.0, "originalCurrency": "USD", "date": now.AddDate(0, 0, -10)},
		{"description": "Electricity bill", "category": "Bills & Utilities", "originalAmount": 95.40, "originalCurrency": "USD", "date": now.AddDate(0, 0, -5)},
		{"description": "Cinema night", "category": "Entertainment", "originalAmount": 28.0, "originalCurrency": "USD", "date": now.AddDate(0, 0, -3)},
		{"description": "Pharmacy", "category": "Healthcare", "originalAmount": 22.15, "originalCurrency": "EUR", "date": now.AddDate(0, 0, -7)},
		{"description": "New headphones", "category": "Shopping", "originalAmount": 149.99, "originalCurrency": "USD", "date": now.AddDate(0, 0, -12)},
	}
	for _, e := range expenses {
		post(apiURL+"/api/expenses", e)
	}
	log.Printf("Created %d expenses", len(expenses))

	put(apiURL+"/api/budget", map[string]interface{}{
		"currency": "USD",
		"limits": map[string]float64{
			"Food & Dining":     500,
			"Transportation":    300,
			"Shopping":          400,
			"Bills & Utilities": 1000,
			"Entertainment":     200,
			"Healthcare":        300,
			"Other":             200,
		},
	})
	log.Println("Configured budget limits")

	post(apiURL+"/api/recurring", map[string]interface{}{
		"description":      "Streaming subscription",
		"category":         "Entertainment",
		"originalAmount":   15.99,
		"originalCurrency": "USD",
		"frequency":        "monthly",
		"startDate":        now.AddDate(0, 0, -1),
	})
	log.Println("Created recurring template")

	log.Println("Done")
}

func post(url string, body interface{}) { send(http.MethodPost, url, body) }
func put(url string, body interface{})  { send(http.MethodPut, url, body) }

func send(method, url string, body interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Fatalf("%s %s: unexpected status %s", method, url, resp.Status)
	}
	fmt.Printf("  %s %s -> %s\n", method, url, resp.Status)
}
