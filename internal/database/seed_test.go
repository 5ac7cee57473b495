package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/simonindia/safety-api/internal/config"
	"github.com/simonindia/safety-api/internal/database"
	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/testutil"
)

func bootstrapConfig() *config.BootstrapConfig {
	return &config.BootstrapConfig{
		AdminUsername:  "admin@simonindia.ai",
		SafetyUsername: "safety@simonindia.ai",
		Password:       "changeme",
	}
}

func TestSeed(t *testing.T) {
	db := testutil.SetupTestDB(t)

	require.NoError(t, database.Seed(db, bootstrapConfig(), zap.NewNop()))

	var users []domain.User
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 2)
	assert.Equal(t, "admin@simonindia.ai", users[0].Username)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
	assert.Equal(t, "safety@simonindia.ai", users[1].Username)
	assert.Equal(t, domain.RoleSafety, users[1].Role)

	// Passwords are stored hashed, never in clear
	assert.NotEqual(t, "changeme", users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("changeme")))

	var projectCount, subCount int64
	require.NoError(t, db.Model(&domain.Project{}).Count(&projectCount).Error)
	require.NoError(t, db.Model(&domain.SubContractor{}).Count(&subCount).Error)
	assert.Equal(t, int64(4), projectCount)
	assert.Equal(t, int64(10), subCount)
}

func TestSeedIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)

	require.NoError(t, database.Seed(db, bootstrapConfig(), zap.NewNop()))
	require.NoError(t, database.Seed(db, bootstrapConfig(), zap.NewNop()))

	var userCount, projectCount int64
	require.NoError(t, db.Model(&domain.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&domain.Project{}).Count(&projectCount).Error)
	assert.Equal(t, int64(2), userCount)
	assert.Equal(t, int64(4), projectCount)
}

func TestSeedSkipsNonEmptyTables(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestProject(t, db, "EXISTING-1")

	require.NoError(t, database.Seed(db, bootstrapConfig(), zap.NewNop()))

	// The project section is skipped but users are still created
	var projectCount, userCount int64
	require.NoError(t, db.Model(&domain.Project{}).Count(&projectCount).Error)
	require.NoError(t, db.Model(&domain.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(1), projectCount)
	assert.Equal(t, int64(2), userCount)
}
