package repository

import (
	"context"

	"github.com/simonindia/safety-api/internal/domain"
	"gorm.io/gorm"
)

// SubContractorRepository handles subcontractor data access operations
type SubContractorRepository struct {
	db *gorm.DB
}

// NewSubContractorRepository creates a new subcontractor repository instance
func NewSubContractorRepository(db *gorm.DB) *SubContractorRepository {
	return &SubContractorRepository{db: db}
}

// Create creates a new subcontractor in the database
func (r *SubContractorRepository) Create(ctx context.Context, sc *domain.SubContractor) error {
	return r.db.WithContext(ctx).Create(sc).Error
}

// GetByID retrieves a subcontractor by its ID
func (r *SubContractorRepository) GetByID(ctx context.Context, id uint) (*domain.SubContractor, error) {
	var sc domain.SubContractor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sc).Error
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// Update updates an existing subcontractor in the database
func (r *SubContractorRepository) Update(ctx context.Context, sc *domain.SubContractor) error {
	return r.db.WithContext(ctx).Save(sc).Error
}

// Delete removes a subcontractor
func (r *SubContractorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.SubContractor{}, "id = ?", id).Error
}

// List returns all subcontractors
func (r *SubContractorRepository) List(ctx context.Context) ([]domain.SubContractor, error) {
	var subs []domain.SubContractor
	err := r.db.WithContext(ctx).Find(&subs).Error
	return subs, err
}
