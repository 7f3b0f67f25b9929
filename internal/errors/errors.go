// internal/errors/errors.go
package appErrors

import "fmt"

// ErrLeadNotFound is a sentinel error
type ErrLeadNotFound struct {
    LeadID string
}

func (e *ErrLeadNotFound) Error() string {
    return fmt.Sprintf("lead with ID %s not found", e.LeadID)
}

// Helper constructor
func NewLeadNotFound(id string) error {
    return &ErrLeadNotFound{LeadID: id}
}
