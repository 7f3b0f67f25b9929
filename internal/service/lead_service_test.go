package service_test

import (
    "context"
    "errors"
    "testing"

    "github.com/unclebandit/leadcapture-backend/internal/model"
    "github.com/unclebandit/leadcapture-backend/internal/service"
)

// --- Mock repository ---

type MockLeadRepo struct {
    insertCalls int
    failInsert  bool
    inserted    []*model.Lead
    listTotal   int
}

func (m *MockLeadRepo) Insert(l *model.Lead) error {
    m.insertCalls++
    if m.failInsert {
        return errors.New("insert failed")
    }
    l.ID = "11111111-1111-1111-1111-111111111111"
    m.inserted = append(m.inserted, l)
    return nil
}

func (m *MockLeadRepo) GetByID(id string) (*model.Lead, error) {
    return nil, nil
}

func (m *MockLeadRepo) ListLeads(offset, limit int, industry string) ([]*model.Lead, int, error) {
    return []*model.Lead{}, m.listTotal, nil
}

func (m *MockLeadRepo) GetLeadStats() (map[string]int, error) {
    return map[string]int{}, nil
}

// --- Mock confirmer ---

type MockConfirmer struct {
    calls int
    fail  bool
    last  *model.Lead
}

func (m *MockConfirmer) SendConfirmation(ctx context.Context, lead *model.Lead) error {
    m.calls++
    m.last = lead
    if m.fail {
        return errors.New("delivery failed")
    }
    return nil
}

// --- Tests ---

func TestSubmitLeadInsertsOnceAndConfirmsOnce(t *testing.T) {
    repo := &MockLeadRepo{}
    confirmer := &MockConfirmer{}
    svc := &service.LeadService{LeadRepo: repo, Confirmer: confirmer}

    lead, err := svc.SubmitLead(context.Background(), service.SubmissionInput{
        Name:     "Jane",
        Email:    "jane@x.com",
        Industry: "finance",
    })
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    if repo.insertCalls != 1 {
        t.Errorf("expected exactly 1 insert, got %d", repo.insertCalls)
    }
    if confirmer.calls != 1 {
        t.Errorf("expected exactly 1 confirmation send, got %d", confirmer.calls)
    }
    if lead.ID == "" {
        t.Errorf("expected generated id on returned lead")
    }
    if confirmer.last == nil || confirmer.last.Email != "jane@x.com" {
        t.Errorf("confirmer should receive the persisted lead, got %+v", confirmer.last)
    }
    if confirmer.last.ID != lead.ID {
        t.Errorf("confirmer should see the generated id, got %q", confirmer.last.ID)
    }
}

func TestSubmitLeadInsertFailureSendsNoEmail(t *testing.T) {
    repo := &MockLeadRepo{failInsert: true}
    confirmer := &MockConfirmer{}
    svc := &service.LeadService{LeadRepo: repo, Confirmer: confirmer}

    _, err := svc.SubmitLead(context.Background(), service.SubmissionInput{
        Name:     "Jane",
        Email:    "jane@x.com",
        Industry: "finance",
    })
    if err == nil {
        t.Fatal("expected error when insert fails")
    }

    if confirmer.calls != 0 {
        t.Errorf("expected 0 emails when insert fails, got %d", confirmer.calls)
    }
}

func TestSubmitLeadEmailFailureStillSucceeds(t *testing.T) {
    repo := &MockLeadRepo{}
    confirmer := &MockConfirmer{fail: true}
    svc := &service.LeadService{LeadRepo: repo, Confirmer: confirmer}

    lead, err := svc.SubmitLead(context.Background(), service.SubmissionInput{
        Name:     "Jane",
        Email:    "jane@x.com",
        Industry: "finance",
    })
    if err != nil {
        t.Fatalf("email failure must not fail the submission, got: %v", err)
    }
    if lead == nil || lead.ID == "" {
        t.Fatal("expected the persisted lead back despite email failure")
    }
    if repo.insertCalls != 1 {
        t.Errorf("expected 1 insert, got %d", repo.insertCalls)
    }
    if confirmer.calls != 1 {
        t.Errorf("expected exactly 1 send attempt, got %d", confirmer.calls)
    }
}

func TestSubmitLeadRejectsMissingFields(t *testing.T) {
    cases := []struct {
        name  string
        input service.SubmissionInput
    }{
        {"missing name", service.SubmissionInput{Email: "jane@x.com", Industry: "finance"}},
        {"missing email", service.SubmissionInput{Name: "Jane", Industry: "finance"}},
        {"missing industry", service.SubmissionInput{Name: "Jane", Email: "jane@x.com"}},
        {"whitespace name", service.SubmissionInput{Name: "   ", Email: "jane@x.com", Industry: "finance"}},
    }

    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            repo := &MockLeadRepo{}
            confirmer := &MockConfirmer{}
            svc := &service.LeadService{LeadRepo: repo, Confirmer: confirmer}

            if _, err := svc.SubmitLead(context.Background(), tc.input); err == nil {
                t.Fatal("expected validation error")
            }
            if repo.insertCalls != 0 {
                t.Errorf("expected 0 inserts, got %d", repo.insertCalls)
            }
            if confirmer.calls != 0 {
                t.Errorf("expected 0 emails, got %d", confirmer.calls)
            }
        })
    }
}

func TestListLeadsClampsPagination(t *testing.T) {
    repo := &MockLeadRepo{listTotal: 45}
    svc := &service.LeadService{LeadRepo: repo, Confirmer: &MockConfirmer{}}

    _, pagination, err := svc.ListLeads(0, 500, "")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    if pagination["page"] != 1 {
        t.Errorf("expected page clamped to 1, got %d", pagination["page"])
    }
    if pagination["page_size"] != 100 {
        t.Errorf("expected page_size clamped to 100, got %d", pagination["page_size"])
    }
    if pagination["total_count"] != 45 {
        t.Errorf("expected total_count 45, got %d", pagination["total_count"])
    }
}
