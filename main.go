package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"notekeep/accounts"
	"notekeep/config"
	"notekeep/handlers"
	appmw "notekeep/middleware"
	"notekeep/models"
	"notekeep/notes"
	"notekeep/store"
	"notekeep/summarize"
)

func newRouter(h *handlers.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
	r.Post("/api/refresh-token", h.RefreshToken)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(h.JWTSecret))
		r.Get("/api/notes", h.GetNotes)
		r.Get("/api/notes/{id}", h.GetNote)
		r.Post("/api/notes", h.SaveNote)
		r.Delete("/api/notes/{id}", h.DeleteNote)
		r.Post("/api/notes/{id}/export", h.ExportNote)
		r.Post("/api/summarize", h.Summarize)
	})

	return r
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}

	accountLedger := accounts.NewLedger(store.New[models.Account](filepath.Join(cfg.DataDir, "users.json")))
	noteLedger := notes.NewLedger(store.New[models.Note](filepath.Join(cfg.DataDir, "notes.json")))

	// The model load runs off the request path; until it finishes,
	// summarize requests are answered with a retry-later signal.
	log.Printf("Loading model runtime at %s...", cfg.ModelBaseURL)
	gate := summarize.NewGate(func() (summarize.Model, error) {
		m, err := summarize.Load(cfg.ModelBaseURL, summarize.Options{
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
		}, cfg.ModelLoadTimeout)
		if err != nil {
			log.Println("Model load failed:", err)
			return nil, err
		}
		log.Println("Model loaded successfully.")
		return m, nil
	})

	h := handlers.New(accountLedger, noteLedger, summarize.NewService(gate, cfg.ModelTimeout), []byte(cfg.JWTSecret))
	r := newRouter(h)

	log.Println("Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
