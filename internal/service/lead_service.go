// internal/service/lead_service.go
package service

import (
    "context"
    "fmt"
    "log"
    "strings"
    "time"

    "github.com/unclebandit/leadcapture-backend/internal/model"
    "github.com/unclebandit/leadcapture-backend/internal/repository"
)

// Confirmer sends the post-submission confirmation email.
type Confirmer interface {
    SendConfirmation(ctx context.Context, lead *model.Lead) error
}

type LeadService struct {
    LeadRepo  repository.LeadRepositoryInterface
    Confirmer Confirmer
}

type SubmissionInput struct {
    Name        string
    Email       string
    Industry    string
    SessionID   *string
    SubmittedAt *time.Time
}

// LeadStats summarizes captured leads per industry.
type LeadStats struct {
    Total      int            `json:"total"`
    ByIndustry map[string]int `json:"by_industry"`
}

// SubmitLead runs the submission pipeline: exactly one insert, then at
// most one confirmation email. The insert is the durability point — once
// it succeeds the submission is successful and a failed confirmation
// email is logged, never surfaced.
func (s *LeadService) SubmitLead(ctx context.Context, in SubmissionInput) (*model.Lead, error) {
    if strings.TrimSpace(in.Name) == "" {
        return nil, fmt.Errorf("name is required")
    }
    if strings.TrimSpace(in.Email) == "" {
        return nil, fmt.Errorf("email is required")
    }
    if strings.TrimSpace(in.Industry) == "" {
        return nil, fmt.Errorf("industry is required")
    }

    lead := &model.Lead{
        Name:      strings.TrimSpace(in.Name),
        Email:     strings.TrimSpace(in.Email),
        Industry:  strings.TrimSpace(in.Industry),
        SessionID: in.SessionID,
    }
    if in.SubmittedAt != nil {
        lead.SubmittedAt = *in.SubmittedAt
    }

    if err := s.LeadRepo.Insert(lead); err != nil {
        return nil, err
    }

    if err := s.Confirmer.SendConfirmation(ctx, lead); err != nil {
        log.Println("⚠️ failed to send confirmation email for lead", lead.ID, ":", err)
    }

    return lead, nil
}

// ListLeads fetches leads with pagination
func (s *LeadService) ListLeads(page, pageSize int, industry string) ([]model.Lead, map[string]int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    offset := (page - 1) * pageSize

    ptrs, total, err := s.LeadRepo.ListLeads(offset, pageSize, industry)
    if err != nil {
        return nil, nil, err
    }

    leads := make([]model.Lead, len(ptrs))
    for i, l := range ptrs {
        leads[i] = *l
    }

    totalPages := (total + pageSize - 1) / pageSize
    pagination := map[string]int{
        "page":        page,
        "page_size":   pageSize,
        "total_count": total,
        "total_pages": totalPages,
    }

    return leads, pagination, nil
}

// GetLeadDetails fetches a lead by ID
func (s *LeadService) GetLeadDetails(id string) (*model.Lead, error) {
    return s.LeadRepo.GetByID(id)
}

func (s *LeadService) GetLeadStats() (*LeadStats, error) {
    byIndustry, err := s.LeadRepo.GetLeadStats()
    if err != nil {
        return nil, err
    }

    total := 0
    for _, count := range byIndustry {
        total += count
    }

    return &LeadStats{
        Total:      total,
        ByIndustry: byIndustry,
    }, nil
}
