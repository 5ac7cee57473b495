package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/simonindia/safety-api/internal/config"
	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/http/handler"
	"github.com/simonindia/safety-api/internal/http/middleware"
	"github.com/simonindia/safety-api/internal/http/router"
	"github.com/simonindia/safety-api/internal/repository"
	"github.com/simonindia/safety-api/internal/service"
	"github.com/simonindia/safety-api/internal/storage"
	"github.com/simonindia/safety-api/internal/testutil"
)

// setupAPI wires the full HTTP stack over a throwaway database and local
// blob store, the same way cmd/api does it.
func setupAPI(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	log := zap.NewNop()

	blobs, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	cfg := &config.Config{
		App:     config.AppConfig{Name: "safety-api-test", Environment: "development"},
		Storage: config.StorageConfig{PublicPrefix: "/uploads"},
		Export:  config.ExportConfig{IncludeComplianceReport: true},
		RateLimit: config.RateLimitConfig{
			Enabled: false,
		},
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	subContractorRepo := repository.NewSubContractorRepository(db)
	observationRepo := repository.NewObservationRepository(db)

	authService := service.NewAuthService(userRepo, log)
	projectService := service.NewProjectService(projectRepo, observationRepo, log)
	subContractorService := service.NewSubContractorService(subContractorRepo, projectRepo, observationRepo, log)
	observationService := service.NewObservationService(observationRepo, blobs, log)
	dataService := service.NewDataService(projectRepo, observationRepo, subContractorRepo)
	exportService := service.NewExportService(observationRepo, &cfg.Storage, &cfg.Export)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		handler.NewAuthHandler(authService, log),
		handler.NewDataHandler(dataService, log),
		handler.NewProjectHandler(projectService, log),
		handler.NewSubContractorHandler(subContractorService, log),
		handler.NewObservationHandler(observationService, log),
		handler.NewExportHandler(exportService, log),
		handler.NewUploadHandler(blobs, log),
	)

	return rt.Setup(), db
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string, role domain.UserRole) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}).Error)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(target))
}
