package service

import (
	"context"
	"fmt"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/mapper"
	"github.com/simonindia/safety-api/internal/repository"
)

// DataService assembles the bootstrap snapshot the frontend loads on startup
type DataService struct {
	projectRepo       *repository.ProjectRepository
	observationRepo   *repository.ObservationRepository
	subContractorRepo *repository.SubContractorRepository
}

// NewDataService creates a new data service instance
func NewDataService(
	projectRepo *repository.ProjectRepository,
	observationRepo *repository.ObservationRepository,
	subContractorRepo *repository.SubContractorRepository,
) *DataService {
	return &DataService{
		projectRepo:       projectRepo,
		observationRepo:   observationRepo,
		subContractorRepo: subContractorRepo,
	}
}

// Snapshot returns all projects, observations in descending id order, and
// subcontractors grouped by project code
func (s *DataService) Snapshot(ctx context.Context) (*domain.BootstrapDataDTO, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	observations, err := s.observationRepo.ListDescending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}

	subs, err := s.subContractorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcontractors: %w", err)
	}

	return &domain.BootstrapDataDTO{
		Projects:       mapper.ToProjectDTOs(projects),
		Observations:   mapper.ToObservationDTOs(observations),
		SubContractors: mapper.GroupSubContractorsByProject(subs),
	}, nil
}
