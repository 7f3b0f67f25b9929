// internal/model/lead.go
package model

import "time"

// Lead is a persisted record of one form submission. Leads are write-once:
// nothing in this service updates or deletes a row after insertion.
type Lead struct {
    ID          string    `db:"id" json:"id"`
    Name        string    `db:"name" json:"name"`
    Email       string    `db:"email" json:"email"`
    Industry    string    `db:"industry" json:"industry"`
    SessionID   *string   `db:"session_id" json:"session_id,omitempty"`
    CreatedAt   time.Time `db:"created_at" json:"created_at"`
    UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
    SubmittedAt time.Time `db:"submitted_at" json:"submitted_at"`
}
