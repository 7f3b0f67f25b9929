// cmd/server/main.go
package main

import (
    "log"
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/joho/godotenv"

    "github.com/unclebandit/leadcapture-backend/internal/ai"
    "github.com/unclebandit/leadcapture-backend/internal/config"
    "github.com/unclebandit/leadcapture-backend/internal/controller"
    "github.com/unclebandit/leadcapture-backend/internal/db"
    "github.com/unclebandit/leadcapture-backend/internal/email"
    "github.com/unclebandit/leadcapture-backend/internal/handler"
    "github.com/unclebandit/leadcapture-backend/internal/repository"
    "github.com/unclebandit/leadcapture-backend/internal/service"
)

func main() {
    // Load .env
    if err := godotenv.Load(); err != nil {
        log.Println("⚠️ No .env file found, relying on OS environment variables")
    }

    cfg, err := config.Load()
    if err != nil {
        log.Fatalf("failed to load config: %v", err)
    }

    // Init DB (runs migrations)
    db.Init(cfg)

    leadRepo := &repository.LeadRepository{DB: db.DB}

    completions, err := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
    if err != nil {
        log.Fatalf("failed to init openai client: %v", err)
    }

    sender, err := email.NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken, cfg.SenderEmail, cfg.ReplyToEmail)
    if err != nil {
        log.Fatalf("failed to init postmark sender: %v", err)
    }

    confirmationService := &service.ConfirmationService{
        Completions: completions,
        Sender:      sender,
        Subject:     cfg.EmailSubject,
    }

    leadService := &service.LeadService{
        LeadRepo:  leadRepo,
        Confirmer: confirmationService,
    }

    leadController := &controller.LeadController{
        LeadService: leadService,
        Confirmer:   confirmationService,
    }

    leadHandler := &handler.LeadHandler{
        Service: leadService,
    }

    r := chi.NewRouter()
    r.Use(middleware.Logger)
    r.Use(middleware.Recoverer)

    // Lead routes
    r.Post("/leads", leadController.SubmitLead)
    r.Get("/leads", leadController.ListLeads)
    r.Get("/leads/stats", leadHandler.GetLeadStatsHandler)
    r.Get("/leads/{id}", leadHandler.GetLeadHandler)

    // Confirmation function, callable on its own
    r.Post("/functions/confirmation-email", leadController.SendConfirmationEmail)

    r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
        if err := db.DB.Ping(); err != nil {
            http.Error(w, "db unreachable", http.StatusServiceUnavailable)
            return
        }
        w.WriteHeader(http.StatusOK)
    })

    log.Println("🚀 Server running on :" + cfg.Port)
    log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
