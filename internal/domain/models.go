package domain

// UserRole classifies bootstrap accounts
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleSafety UserRole = "safety"
)

// User is a bootstrap account. Users are seeded once at startup and never
// mutated or deleted through the API.
type User struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Username     string   `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"type:varchar(128);column:password_hash" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
}

// Project is the natural-key parent of observations. projectCode is the
// unique business key other entities reference by value.
type Project struct {
	ID                       uint   `gorm:"primaryKey" json:"id"`
	ProjectCode              string `gorm:"type:varchar(50);uniqueIndex;not null;column:project_code" json:"projectCode"`
	ProjectName              string `gorm:"type:varchar(200);not null;column:project_name" json:"projectName"`
	ProjectManagerContractor string `gorm:"type:varchar(100);column:project_manager_contractor" json:"projectManagerContractor"`
	ProjectManagerClient     string `gorm:"type:varchar(100);column:project_manager_client" json:"projectManagerClient"`
	ClientName               string `gorm:"type:varchar(100);column:client_name" json:"clientName"`
	Contractor               string `gorm:"type:varchar(100)" json:"contractor"`
}

// SubContractor references a project by code. The reference is by value and
// deliberately not enforced at the storage level.
type SubContractor struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	ProjectCode string `gorm:"type:varchar(50);not null;column:project_code" json:"project_code"`
}

// Observation is a recorded safety issue with optional compliance closure.
// Photo and report fields hold blob references (local path or URL), never
// inline bytes. projectCode and subContractor are soft references.
type Observation struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	ProjectCode      string `gorm:"type:varchar(50);not null;index;column:project_code" json:"projectCode"`
	Date             string `gorm:"type:varchar(20);not null" json:"date"`
	RaisedBy         string `gorm:"type:varchar(100);not null;column:raised_by" json:"raisedBy"`
	IssueType        string `gorm:"type:varchar(50);not null;column:issue_type" json:"issueType"`
	SafetyCategory   string `gorm:"type:varchar(50);not null;column:safety_category" json:"safetyCategory"`
	Observation      string `gorm:"type:text;not null" json:"observation"`
	ObservationPhoto string `gorm:"type:text;column:observation_photo" json:"observationPhoto"`
	Contractor       string `gorm:"type:varchar(100);not null;default:'SIL'" json:"contractor"`
	SubContractor    string `gorm:"type:varchar(100);index;column:sub_contractor" json:"subContractor"`
	Status           string `gorm:"type:varchar(20);default:'Open'" json:"status"`
	Compliance       string `gorm:"type:text" json:"compliance"`
	ComplianceDate   string `gorm:"type:varchar(20);column:compliance_date" json:"complianceDate"`
	CompliancePhoto  string `gorm:"type:text;column:compliance_photo" json:"compliancePhoto"`
	ComplianceReport string `gorm:"type:text;column:compliance_report" json:"complianceReport"`
}

// Default observation field values applied at create time
const (
	DefaultContractor = "SIL"
	DefaultStatus     = "Open"
)
