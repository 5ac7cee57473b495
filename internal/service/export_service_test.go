package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/simonindia/safety-api/internal/config"
	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/repository"
	"github.com/simonindia/safety-api/internal/service"
	"github.com/simonindia/safety-api/internal/testutil"
)

func setupExportService(t *testing.T, includeReport bool) (*service.ExportService, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	svc := service.NewExportService(
		repository.NewObservationRepository(db),
		&config.StorageConfig{PublicPrefix: "/uploads"},
		&config.ExportConfig{IncludeComplianceReport: includeReport},
	)
	return svc, db
}

func exportRows(t *testing.T, svc *service.ExportService, baseURL string) [][]string {
	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), &buf, baseURL))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportService_Header(t *testing.T) {
	svc, _ := setupExportService(t, false)

	rows := exportRows(t, svc, "http://localhost:8080")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"S.No", "Project Code", "Date", "Raised By", "Issue Type",
		"Safety Category", "Observation", "Observation Photo",
		"Sub Contractor", "Status", "Compliance", "Compliance Date",
		"Compliance Photo",
	}, rows[0])
}

func TestExportService_HeaderWithComplianceReport(t *testing.T) {
	svc, _ := setupExportService(t, true)

	rows := exportRows(t, svc, "http://localhost:8080")
	require.Len(t, rows, 1)
	assert.Equal(t, "Compliance Report", rows[0][len(rows[0])-1])
}

func TestExportService_RowsNewestFirst(t *testing.T) {
	svc, db := setupExportService(t, false)
	first := testutil.CreateTestObservation(t, db, "I-30059")
	second := testutil.CreateTestObservation(t, db, "I-30060")

	rows := exportRows(t, svc, "http://localhost:8080")
	require.Len(t, rows, 3)

	// Newest observation first, sequence numbers still count from 1
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, second.ProjectCode, rows[1][1])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, first.ProjectCode, rows[2][1])
}

func TestExportService_RewritesLocalReferences(t *testing.T) {
	svc, db := setupExportService(t, false)
	require.NoError(t, db.Create(&domain.Observation{
		ProjectCode:      "I-30059",
		Date:             "2025-01-15",
		RaisedBy:         "Inspector",
		IssueType:        "Unsafe Condition",
		SafetyCategory:   "Housekeeping",
		Observation:      "Debris on walkway",
		ObservationPhoto: "/uploads/observation_abc.png",
		CompliancePhoto:  "https://bucket.s3.amazonaws.com/uploads/compliance_def.png",
		Contractor:       "SIL",
		Status:           "Open",
	}).Error)

	rows := exportRows(t, svc, "https://safety.simonindia.ai")
	require.Len(t, rows, 2)

	// Local references get the request host; absolute URLs pass through
	assert.Equal(t, "https://safety.simonindia.ai/uploads/observation_abc.png", rows[1][7])
	assert.Equal(t, "https://bucket.s3.amazonaws.com/uploads/compliance_def.png", rows[1][12])
}
