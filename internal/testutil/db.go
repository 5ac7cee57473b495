package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/simonindia/safety-api/internal/domain"
)

// SetupTestDB opens a throwaway sqlite database in the test's temp directory
// and migrates the full schema. The file is removed with the temp dir when
// the test finishes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Project{},
		&domain.SubContractor{},
		&domain.Observation{},
	)
	require.NoError(t, err, "Failed to migrate test database")

	return db
}

// CreateTestProject inserts a project with the given code
func CreateTestProject(t *testing.T, db *gorm.DB, code string) *domain.Project {
	t.Helper()

	project := &domain.Project{
		ProjectCode: code,
		ProjectName: "Test Project " + code,
		ClientName:  "Test Client",
		Contractor:  domain.DefaultContractor,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

// CreateTestObservation inserts an observation under the given project code
func CreateTestObservation(t *testing.T, db *gorm.DB, projectCode string) *domain.Observation {
	t.Helper()

	obs := &domain.Observation{
		ProjectCode:    projectCode,
		Date:           "2025-01-15",
		RaisedBy:       "Inspector",
		IssueType:      "Unsafe Condition",
		SafetyCategory: "Housekeeping",
		Observation:    "Debris left on walkway",
		Contractor:     domain.DefaultContractor,
		SubContractor:  "ABC Contractors",
		Status:         domain.DefaultStatus,
	}
	require.NoError(t, db.Create(obs).Error)
	return obs
}

// CreateTestSubContractor inserts a subcontractor under the given project code
func CreateTestSubContractor(t *testing.T, db *gorm.DB, projectCode, name string) *domain.SubContractor {
	t.Helper()

	sc := &domain.SubContractor{
		Name:        name,
		ProjectCode: projectCode,
	}
	require.NoError(t, db.Create(sc).Error)
	return sc
}
