package handler_test

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/unclebandit/leadcapture-backend/internal/errors"
    "github.com/unclebandit/leadcapture-backend/internal/handler"
    "github.com/unclebandit/leadcapture-backend/internal/model"
    "github.com/unclebandit/leadcapture-backend/internal/service"
)

type MockLeadRepo struct {
    leads map[string]*model.Lead
    stats map[string]int
}

func (m *MockLeadRepo) Insert(l *model.Lead) error { return nil }

func (m *MockLeadRepo) GetByID(id string) (*model.Lead, error) {
    if l, ok := m.leads[id]; ok {
        return l, nil
    }
    return nil, appErrors.NewLeadNotFound(id)
}

func (m *MockLeadRepo) ListLeads(offset, limit int, industry string) ([]*model.Lead, int, error) {
    return []*model.Lead{}, 0, nil
}

func (m *MockLeadRepo) GetLeadStats() (map[string]int, error) {
    return m.stats, nil
}

func newRouter(repo *MockLeadRepo) *chi.Mux {
    h := &handler.LeadHandler{
        Service: &service.LeadService{LeadRepo: repo},
    }
    r := chi.NewRouter()
    r.Get("/leads/stats", h.GetLeadStatsHandler)
    r.Get("/leads/{id}", h.GetLeadHandler)
    return r
}

func TestGetLeadHandler(t *testing.T) {
    repo := &MockLeadRepo{
        leads: map[string]*model.Lead{
            "abc": {ID: "abc", Name: "Jane", Email: "jane@x.com", Industry: "finance"},
        },
    }
    r := newRouter(repo)

    req := httptest.NewRequest("GET", "/leads/abc", nil)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)

    if w.Result().StatusCode != http.StatusOK {
        t.Fatalf("expected 200, got %d", w.Result().StatusCode)
    }

    var lead model.Lead
    if err := json.NewDecoder(w.Result().Body).Decode(&lead); err != nil {
        t.Fatalf("failed to decode response: %v", err)
    }
    if lead.Name != "Jane" {
        t.Errorf("expected Jane, got %q", lead.Name)
    }
}

func TestGetLeadHandlerNotFound(t *testing.T) {
    r := newRouter(&MockLeadRepo{leads: map[string]*model.Lead{}})

    req := httptest.NewRequest("GET", "/leads/missing", nil)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)

    if w.Result().StatusCode != http.StatusNotFound {
        t.Fatalf("expected 404, got %d", w.Result().StatusCode)
    }
}

func TestGetLeadStatsHandler(t *testing.T) {
    repo := &MockLeadRepo{
        stats: map[string]int{"finance": 2, "retail": 1},
    }
    r := newRouter(repo)

    req := httptest.NewRequest("GET", "/leads/stats", nil)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)

    if w.Result().StatusCode != http.StatusOK {
        t.Fatalf("expected 200, got %d", w.Result().StatusCode)
    }

    var stats service.LeadStats
    if err := json.NewDecoder(w.Result().Body).Decode(&stats); err != nil {
        t.Fatalf("failed to decode response: %v", err)
    }
    if stats.Total != 3 {
        t.Errorf("expected total 3, got %d", stats.Total)
    }
    if stats.ByIndustry["finance"] != 2 {
        t.Errorf("expected 2 finance leads, got %d", stats.ByIndustry["finance"])
    }
}
