package service

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrDuplicateProjectCode is returned when a project code already exists
	ErrDuplicateProjectCode = errors.New("project code already exists")

	// ErrSubContractorNotFound is returned when a subcontractor is not found
	ErrSubContractorNotFound = errors.New("subcontractor not found")

	// ErrSubContractorFieldsRequired is returned when project_code or name is missing
	ErrSubContractorFieldsRequired = errors.New("project code and name are required")

	// ErrObservationNotFound is returned when an observation is not found
	ErrObservationNotFound = errors.New("observation not found")
)

// ReferencedError blocks deletion of reference data that observations still
// point at. The message carries the exact referencing count.
type ReferencedError struct {
	Resource string // "project" or "subcontractor"
	Count    int64
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("Cannot delete %s. It has %d observations.", e.Resource, e.Count)
}
