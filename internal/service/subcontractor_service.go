package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/mapper"
	"github.com/simonindia/safety-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubContractorService handles business logic for subcontractors
type SubContractorService struct {
	subContractorRepo *repository.SubContractorRepository
	projectRepo       *repository.ProjectRepository
	observationRepo   *repository.ObservationRepository
	logger            *zap.Logger
}

// NewSubContractorService creates a new subcontractor service instance
func NewSubContractorService(
	subContractorRepo *repository.SubContractorRepository,
	projectRepo *repository.ProjectRepository,
	observationRepo *repository.ObservationRepository,
	logger *zap.Logger,
) *SubContractorService {
	return &SubContractorService{
		subContractorRepo: subContractorRepo,
		projectRepo:       projectRepo,
		observationRepo:   observationRepo,
		logger:            logger,
	}
}

// Create registers a subcontractor under an existing project code
func (s *SubContractorService) Create(ctx context.Context, req *domain.CreateSubContractorRequest) (*domain.SubContractorDTO, error) {
	if req.ProjectCode == "" || req.Name == "" {
		return nil, ErrSubContractorFieldsRequired
	}

	project, err := s.projectRepo.GetByCode(ctx, req.ProjectCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	sc := &domain.SubContractor{
		Name:        req.Name,
		ProjectCode: req.ProjectCode,
	}
	if err := s.subContractorRepo.Create(ctx, sc); err != nil {
		return nil, fmt.Errorf("failed to create subcontractor: %w", err)
	}

	dto := mapper.ToSubContractorDTO(sc)
	return &dto, nil
}

// Update applies a typed partial update to a subcontractor
func (s *SubContractorService) Update(ctx context.Context, id uint, req *domain.UpdateSubContractorRequest) (*domain.SubContractorDTO, error) {
	sc, err := s.subContractorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubContractorNotFound
		}
		return nil, fmt.Errorf("failed to get subcontractor: %w", err)
	}

	if req.Name != nil {
		sc.Name = *req.Name
	}
	if req.ProjectCode != nil {
		sc.ProjectCode = *req.ProjectCode
	}

	if err := s.subContractorRepo.Update(ctx, sc); err != nil {
		return nil, fmt.Errorf("failed to update subcontractor: %w", err)
	}

	dto := mapper.ToSubContractorDTO(sc)
	return &dto, nil
}

// Delete removes a subcontractor unless observations still reference its name
func (s *SubContractorService) Delete(ctx context.Context, id uint) error {
	sc, err := s.subContractorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubContractorNotFound
		}
		return fmt.Errorf("failed to get subcontractor: %w", err)
	}

	count, err := s.observationRepo.CountBySubContractor(ctx, sc.Name)
	if err != nil {
		return fmt.Errorf("failed to count observations: %w", err)
	}
	if count > 0 {
		return &ReferencedError{Resource: "subcontractor", Count: count}
	}

	if err := s.subContractorRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete subcontractor: %w", err)
	}

	s.logger.Info("subcontractor deleted",
		zap.Uint("id", id),
		zap.String("name", sc.Name),
	)
	return nil
}
