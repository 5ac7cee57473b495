package repository

import (
	"context"

	"github.com/simonindia/safety-api/internal/domain"
	"gorm.io/gorm"
)

// ObservationRepository handles observation data access operations
type ObservationRepository struct {
	db *gorm.DB
}

// NewObservationRepository creates a new observation repository instance
func NewObservationRepository(db *gorm.DB) *ObservationRepository {
	return &ObservationRepository{db: db}
}

// Create creates a new observation in the database
func (r *ObservationRepository) Create(ctx context.Context, obs *domain.Observation) error {
	return r.db.WithContext(ctx).Create(obs).Error
}

// GetByID retrieves an observation by its ID
func (r *ObservationRepository) GetByID(ctx context.Context, id uint) (*domain.Observation, error) {
	var obs domain.Observation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&obs).Error
	if err != nil {
		return nil, err
	}
	return &obs, nil
}

// Update updates an existing observation in the database
func (r *ObservationRepository) Update(ctx context.Context, obs *domain.Observation) error {
	return r.db.WithContext(ctx).Save(obs).Error
}

// Delete removes an observation. Deletion is unconditional; observations
// never block on referential checks.
func (r *ObservationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Observation{}, "id = ?", id).Error
}

// ListDescending returns all observations ordered by descending id, the
// order both the bootstrap snapshot and the CSV export use
func (r *ObservationRepository) ListDescending(ctx context.Context) ([]domain.Observation, error) {
	var observations []domain.Observation
	err := r.db.WithContext(ctx).Order("id DESC").Find(&observations).Error
	return observations, err
}

// CountByProjectCode counts observations referencing a project code
func (r *ObservationRepository) CountByProjectCode(ctx context.Context, code string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Observation{}).
		Where("project_code = ?", code).
		Count(&count).Error
	return count, err
}

// CountBySubContractor counts observations referencing a subcontractor name
func (r *ObservationRepository) CountBySubContractor(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Observation{}).
		Where("sub_contractor = ?", name).
		Count(&count).Error
	return count, err
}
