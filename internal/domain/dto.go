package domain

// Request and response shapes for the HTTP API. Field names keep the
// camelCase surface the frontend already speaks; SubContractor keeps its
// historical snake_case project_code key.

// LoginRequest carries bootstrap-account credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// CreateProjectRequest creates a project under a unique projectCode
type CreateProjectRequest struct {
	ProjectCode              string `json:"projectCode" validate:"required"`
	ProjectName              string `json:"projectName" validate:"required"`
	ProjectManagerContractor string `json:"projectManagerContractor"`
	ProjectManagerClient     string `json:"projectManagerClient"`
	ClientName               string `json:"clientName"`
	Contractor               string `json:"contractor"`
}

// UpdateProjectRequest is a typed partial update; nil means "leave as is".
// Unknown JSON keys are rejected at decode time.
type UpdateProjectRequest struct {
	ProjectCode              *string `json:"projectCode"`
	ProjectName              *string `json:"projectName"`
	ProjectManagerContractor *string `json:"projectManagerContractor"`
	ProjectManagerClient     *string `json:"projectManagerClient"`
	ClientName               *string `json:"clientName"`
	Contractor               *string `json:"contractor"`
}

// CreateSubContractorRequest registers a subcontractor under a project code
type CreateSubContractorRequest struct {
	ProjectCode string `json:"project_code"`
	Name        string `json:"name"`
}

// UpdateSubContractorRequest is a typed partial update mirroring Project's
type UpdateSubContractorRequest struct {
	Name        *string `json:"name"`
	ProjectCode *string `json:"project_code"`
}

// CreateObservationRequest carries a new safety observation. Photo and
// report fields accept either a data URL (persisted through the blob store)
// or an existing reference (passed through unchanged).
type CreateObservationRequest struct {
	ProjectCode      string `json:"projectCode" validate:"required"`
	Date             string `json:"date" validate:"required"`
	RaisedBy         string `json:"raisedBy" validate:"required"`
	IssueType        string `json:"issueType" validate:"required"`
	SafetyCategory   string `json:"safetyCategory" validate:"required"`
	Observation      string `json:"observation" validate:"required"`
	ObservationPhoto string `json:"observationPhoto"`
	Contractor       string `json:"contractor"`
	SubContractor    string `json:"subContractor"`
	Status           string `json:"status"`
	Compliance       string `json:"compliance"`
	ComplianceDate   string `json:"complianceDate"`
	CompliancePhoto  string `json:"compliancePhoto"`
	ComplianceReport string `json:"complianceReport"`
}

// UpdateObservationRequest is a typed partial update. A nil photo/report
// pointer leaves the field untouched; an explicit empty string clears it
// without a blob-store round trip.
type UpdateObservationRequest struct {
	ProjectCode      *string `json:"projectCode"`
	Date             *string `json:"date"`
	RaisedBy         *string `json:"raisedBy"`
	IssueType        *string `json:"issueType"`
	SafetyCategory   *string `json:"safetyCategory"`
	Observation      *string `json:"observation"`
	ObservationPhoto *string `json:"observationPhoto"`
	Contractor       *string `json:"contractor"`
	SubContractor    *string `json:"subContractor"`
	Status           *string `json:"status"`
	Compliance       *string `json:"compliance"`
	ComplianceDate   *string `json:"complianceDate"`
	CompliancePhoto  *string `json:"compliancePhoto"`
	ComplianceReport *string `json:"complianceReport"`
}

// ProjectDTO mirrors Project for API responses
type ProjectDTO struct {
	ID                       uint   `json:"id"`
	ProjectCode              string `json:"projectCode"`
	ProjectName              string `json:"projectName"`
	ProjectManagerContractor string `json:"projectManagerContractor"`
	ProjectManagerClient     string `json:"projectManagerClient"`
	ClientName               string `json:"clientName"`
	Contractor               string `json:"contractor"`
}

// SubContractorDTO mirrors SubContractor for API responses
type SubContractorDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ProjectCode string `json:"project_code"`
}

// ObservationDTO mirrors Observation for API responses
type ObservationDTO struct {
	ID               uint   `json:"id"`
	ProjectCode      string `json:"projectCode"`
	Date             string `json:"date"`
	RaisedBy         string `json:"raisedBy"`
	IssueType        string `json:"issueType"`
	SafetyCategory   string `json:"safetyCategory"`
	Observation      string `json:"observation"`
	ObservationPhoto string `json:"observationPhoto"`
	Contractor       string `json:"contractor"`
	SubContractor    string `json:"subContractor"`
	Status           string `json:"status"`
	Compliance       string `json:"compliance"`
	ComplianceDate   string `json:"complianceDate"`
	CompliancePhoto  string `json:"compliancePhoto"`
	ComplianceReport string `json:"complianceReport"`
}

// BootstrapDataDTO is the initial snapshot the frontend loads on startup.
// Subcontractors are grouped by the project code they belong to.
type BootstrapDataDTO struct {
	Projects       []ProjectDTO                  `json:"projects"`
	Observations   []ObservationDTO              `json:"observations"`
	SubContractors map[string][]SubContractorDTO `json:"sub_contractors"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
