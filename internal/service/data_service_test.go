package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonindia/safety-api/internal/repository"
	"github.com/simonindia/safety-api/internal/service"
	"github.com/simonindia/safety-api/internal/testutil"
)

func TestDataService_Snapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewDataService(
		repository.NewProjectRepository(db),
		repository.NewObservationRepository(db),
		repository.NewSubContractorRepository(db),
	)

	testutil.CreateTestProject(t, db, "I-30059")
	testutil.CreateTestProject(t, db, "I-30060")
	testutil.CreateTestSubContractor(t, db, "I-30059", "KK Engineering")
	testutil.CreateTestSubContractor(t, db, "I-30059", "Shivshakti")
	testutil.CreateTestSubContractor(t, db, "I-30060", "Dynamic Engineering")
	older := testutil.CreateTestObservation(t, db, "I-30059")
	newer := testutil.CreateTestObservation(t, db, "I-30060")

	data, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Len(t, data.Projects, 2)

	// Observations come back newest first
	require.Len(t, data.Observations, 2)
	assert.Equal(t, newer.ID, data.Observations[0].ID)
	assert.Equal(t, older.ID, data.Observations[1].ID)

	// Subcontractors are grouped by project code
	require.Len(t, data.SubContractors, 2)
	assert.Len(t, data.SubContractors["I-30059"], 2)
	assert.Len(t, data.SubContractors["I-30060"], 1)
}

func TestDataService_SnapshotEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewDataService(
		repository.NewProjectRepository(db),
		repository.NewObservationRepository(db),
		repository.NewSubContractorRepository(db),
	)

	data, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Projects)
	assert.Empty(t, data.Observations)
	assert.Empty(t, data.SubContractors)
}
