package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/repository"
	"github.com/simonindia/safety-api/internal/service"
	"github.com/simonindia/safety-api/internal/testutil"
)

func setupSubContractorService(t *testing.T) (*service.SubContractorService, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	svc := service.NewSubContractorService(
		repository.NewSubContractorRepository(db),
		repository.NewProjectRepository(db),
		repository.NewObservationRepository(db),
		zap.NewNop(),
	)
	return svc, db
}

func TestSubContractorService_Create(t *testing.T) {
	svc, db := setupSubContractorService(t)
	testutil.CreateTestProject(t, db, "I-30059")

	sc, err := svc.Create(context.Background(), &domain.CreateSubContractorRequest{
		ProjectCode: "I-30059",
		Name:        "KK Engineering",
	})
	require.NoError(t, err)
	assert.NotZero(t, sc.ID)
	assert.Equal(t, "KK Engineering", sc.Name)
	assert.Equal(t, "I-30059", sc.ProjectCode)
}

func TestSubContractorService_CreateMissingFields(t *testing.T) {
	svc, _ := setupSubContractorService(t)

	_, err := svc.Create(context.Background(), &domain.CreateSubContractorRequest{
		ProjectCode: "I-30059",
	})
	assert.ErrorIs(t, err, service.ErrSubContractorFieldsRequired)

	_, err = svc.Create(context.Background(), &domain.CreateSubContractorRequest{
		Name: "KK Engineering",
	})
	assert.ErrorIs(t, err, service.ErrSubContractorFieldsRequired)
}

func TestSubContractorService_CreateUnknownProject(t *testing.T) {
	svc, _ := setupSubContractorService(t)

	_, err := svc.Create(context.Background(), &domain.CreateSubContractorRequest{
		ProjectCode: "I-99999",
		Name:        "KK Engineering",
	})
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestSubContractorService_UpdatePartial(t *testing.T) {
	svc, db := setupSubContractorService(t)
	seeded := testutil.CreateTestSubContractor(t, db, "I-30059", "KK Engineering")

	name := "KK Engineering Works"
	updated, err := svc.Update(context.Background(), seeded.ID, &domain.UpdateSubContractorRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "KK Engineering Works", updated.Name)
	assert.Equal(t, "I-30059", updated.ProjectCode)
}

func TestSubContractorService_DeleteBlockedByObservations(t *testing.T) {
	svc, db := setupSubContractorService(t)
	seeded := testutil.CreateTestSubContractor(t, db, "I-30059", "ABC Contractors")
	// Fixture observation references "ABC Contractors"
	testutil.CreateTestObservation(t, db, "I-30059")

	err := svc.Delete(context.Background(), seeded.ID)
	require.Error(t, err)

	var refErr *service.ReferencedError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "Cannot delete subcontractor. It has 1 observations.", refErr.Error())
}

func TestSubContractorService_Delete(t *testing.T) {
	svc, db := setupSubContractorService(t)
	seeded := testutil.CreateTestSubContractor(t, db, "I-30059", "KK Engineering")

	require.NoError(t, svc.Delete(context.Background(), seeded.ID))

	err := svc.Delete(context.Background(), seeded.ID)
	assert.ErrorIs(t, err, service.ErrSubContractorNotFound)
}
