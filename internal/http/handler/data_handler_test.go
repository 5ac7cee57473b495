package handler_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/testutil"
)

func TestDataSnapshot(t *testing.T) {
	h, db := setupAPI(t)
	testutil.CreateTestProject(t, db, "I-30059")
	testutil.CreateTestSubContractor(t, db, "I-30059", "KK Engineering")
	testutil.CreateTestObservation(t, db, "I-30059")

	rec := doJSON(t, h, http.MethodGet, "/api/data", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.BootstrapDataDTO
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Projects, 1)
	assert.Len(t, resp.Observations, 1)
	require.Contains(t, resp.SubContractors, "I-30059")
	assert.Len(t, resp.SubContractors["I-30059"], 1)
}

func TestExportCSV(t *testing.T) {
	h, db := setupAPI(t)
	testutil.CreateTestObservation(t, db, "I-30059")

	rec := doJSON(t, h, http.MethodGet, "/api/export-excel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "safety_observations.csv")

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "S.No", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "I-30059", rows[1][1])
}

func TestHealth(t *testing.T) {
	h, _ := setupAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/health/db", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
