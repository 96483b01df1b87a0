package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/spendlens/backend/internal/api"
	"github.com/spendlens/backend/internal/rates"
	"github.com/spendlens/backend/internal/service"
	"github.com/spendlens/backend/internal/store"
)

func main() {
	// Load .env if present; real environments set vars directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8111"
	}

	ctx := context.Background()

	// Determine if we're running locally
	useMemoryStore := os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("ENV") == "local"

	var storeImpl store.Store
	if useMemoryStore {
		log.Println("Using in-memory store for local development")
		storeImpl = store.NewMemoryStore()
	} else {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			log.Fatal("GOOGLE_CLOUD_PROJECT must be set when not using the memory store")
		}

		firestoreClient, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		storeImpl = store.NewFirestoreStore(firestoreClient)
	}

	ratesBaseURL := os.Getenv("RATES_BASE_URL")
	if ratesBaseURL == "" {
		ratesBaseURL = rates.DefaultBaseURL
	}
	ratesClient := rates.NewClient(ratesBaseURL, rates.WithRetry(rates.DefaultRetryConfig))

	svc := service.NewSpendService(storeImpl, ratesClient)
	mux := api.NewHandler(svc).Routes()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:1234",
			"http://127.0.0.1:1234",
			"http://localhost:3000",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"User-Agent",
		},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	log.Printf("Starting server on port %s", port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
