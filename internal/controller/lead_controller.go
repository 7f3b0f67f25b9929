// internal/controller/lead_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/unclebandit/leadcapture-backend/internal/model"
    "github.com/unclebandit/leadcapture-backend/internal/service"
)

type LeadController struct {
    LeadService *service.LeadService
    Confirmer   service.Confirmer
}

// SubmitLead handles the form POST: persist the lead, then trigger the
// confirmation email. The response code reflects persistence only.
func (c *LeadController) SubmitLead(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Name        string     `json:"name"`
        Email       string     `json:"email"`
        Industry    string     `json:"industry"`
        SessionID   *string    `json:"session_id"`
        SubmittedAt *time.Time `json:"submitted_at"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Email) == "" || strings.TrimSpace(body.Industry) == "" {
        http.Error(w, "name, email and industry are required", http.StatusBadRequest)
        return
    }

    lead, err := c.LeadService.SubmitLead(r.Context(), service.SubmissionInput{
        Name:        body.Name,
        Email:       body.Email,
        Industry:    body.Industry,
        SessionID:   body.SessionID,
        SubmittedAt: body.SubmittedAt,
    })
    if err != nil {
        http.Error(w, "failed to save lead: "+err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(lead)
}

func (c *LeadController) ListLeads(w http.ResponseWriter, r *http.Request) {
    // Parse query parameters
    page, _ := strconv.Atoi(r.URL.Query().Get("page"))
    pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
    industry := r.URL.Query().Get("industry")

    // Default values if missing
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }

    leads, pagination, err := c.LeadService.ListLeads(page, pageSize, industry)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "data":       leads,
        "pagination": pagination,
    })
}

// SendConfirmationEmail exposes the confirmation function as a callable
// endpoint, taking a lead-shaped payload. Unlike the submission pipeline
// the delivery outcome is reported to the caller here.
func (c *LeadController) SendConfirmationEmail(w http.ResponseWriter, r *http.Request) {
    var body struct {
        ID       string `json:"id"`
        Name     string `json:"name"`
        Email    string `json:"email"`
        Industry string `json:"industry"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if strings.TrimSpace(body.Email) == "" {
        http.Error(w, "email is required", http.StatusBadRequest)
        return
    }

    lead := &model.Lead{
        ID:       body.ID,
        Name:     body.Name,
        Email:    body.Email,
        Industry: body.Industry,
    }

    if err := c.Confirmer.SendConfirmation(r.Context(), lead); err != nil {
        http.Error(w, "failed to send confirmation email: "+err.Error(), http.StatusBadGateway)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "sent":  true,
        "email": lead.Email,
    })
}
