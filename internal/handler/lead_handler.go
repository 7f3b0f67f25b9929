// internal/handler/lead_handler.go
package handler

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/unclebandit/leadcapture-backend/internal/errors"
    "github.com/unclebandit/leadcapture-backend/internal/service"
)

// LeadHandler holds the dependencies for lead-related HTTP handlers
type LeadHandler struct {
    Service *service.LeadService
}

// GetLeadHandler returns a single lead by ID
func (h *LeadHandler) GetLeadHandler(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if id == "" {
        http.Error(w, "invalid lead id", http.StatusBadRequest)
        return
    }

    lead, err := h.Service.GetLeadDetails(id)
    if err != nil {
        var notFound *appErrors.ErrLeadNotFound
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, "failed to fetch lead: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(lead)
}

// GetLeadStatsHandler returns captured lead counts grouped by industry
func (h *LeadHandler) GetLeadStatsHandler(w http.ResponseWriter, r *http.Request) {
    stats, err := h.Service.GetLeadStats()
    if err != nil {
        log.Println("❌ Error fetching lead stats:", err)
        http.Error(w, "failed to fetch stats: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(stats)
}
