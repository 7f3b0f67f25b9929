package repository

import (
    "database/sql"
    "fmt"
    "time"

    "github.com/google/uuid"

    appErrors "github.com/unclebandit/leadcapture-backend/internal/errors"
    "github.com/unclebandit/leadcapture-backend/internal/model"
)

type LeadRepositoryInterface interface {
    // Write side: leads are insert-only
    Insert(l *model.Lead) error

    // Read side
    GetByID(id string) (*model.Lead, error)
    ListLeads(offset, limit int, industry string) ([]*model.Lead, int, error)
    GetLeadStats() (map[string]int, error)
}

type LeadRepository struct {
    DB *sql.DB
}

// ====================== Write side ======================

// Insert persists a new lead and fills in the generated id and timestamps.
// The id is generated here, at insertion time, never by the caller.
func (r *LeadRepository) Insert(l *model.Lead) error {
    now := time.Now()
    l.ID = uuid.NewString()
    l.CreatedAt = now
    l.UpdatedAt = now
    if l.SubmittedAt.IsZero() {
        l.SubmittedAt = now
    }

    query := `
        INSERT INTO leads (id, name, email, industry, session_id, created_at, updated_at, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
    return r.DB.QueryRow(
        query,
        l.ID, l.Name, l.Email, l.Industry, l.SessionID,
        l.CreatedAt, l.UpdatedAt, l.SubmittedAt,
    ).Scan(&l.ID)
}

// ====================== Read side ======================

func (r *LeadRepository) GetByID(id string) (*model.Lead, error) {
    query := `
        SELECT id, name, email, industry, session_id, created_at, updated_at, submitted_at
        FROM leads WHERE id=$1
    `
    var l model.Lead
    err := r.DB.QueryRow(query, id).Scan(
        &l.ID, &l.Name, &l.Email, &l.Industry, &l.SessionID,
        &l.CreatedAt, &l.UpdatedAt, &l.SubmittedAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewLeadNotFound(id)
        }
        return nil, err
    }
    return &l, nil
}

func (r *LeadRepository) ListLeads(offset, limit int, industry string) ([]*model.Lead, int, error) {
    leads := []*model.Lead{}
    query := `SELECT id, name, email, industry, session_id, created_at, updated_at, submitted_at FROM leads WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if industry != "" {
        query += fmt.Sprintf(" AND industry=$%d", argPos)
        args = append(args, industry)
        argPos++
    }

    query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
    args = append(args, limit, offset)

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    for rows.Next() {
        l := &model.Lead{}
        if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Industry, &l.SessionID, &l.CreatedAt, &l.UpdatedAt, &l.SubmittedAt); err != nil {
            return nil, 0, err
        }
        leads = append(leads, l)
    }

    // Count total
    countQuery := `SELECT COUNT(*) FROM leads WHERE 1=1`
    argsCount := []interface{}{}
    if industry != "" {
        countQuery += " AND industry=$1"
        argsCount = append(argsCount, industry)
    }

    var total int
    if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return leads, total, nil
}

func (r *LeadRepository) GetLeadStats() (map[string]int, error) {
    query := `SELECT industry, COUNT(*) FROM leads GROUP BY industry`
    rows, err := r.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    stats := map[string]int{}
    for rows.Next() {
        var industry string
        var count int
        if err := rows.Scan(&industry, &count); err != nil {
            return nil, err
        }
        stats[industry] = count
    }
    return stats, nil
}

var _ LeadRepositoryInterface = (*LeadRepository)(nil)
