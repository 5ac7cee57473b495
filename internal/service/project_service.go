package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/mapper"
	"github.com/simonindia/safety-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo     *repository.ProjectRepository
	observationRepo *repository.ObservationRepository
	logger          *zap.Logger
}

// NewProjectService creates a new project service instance
func NewProjectService(
	projectRepo *repository.ProjectRepository,
	observationRepo *repository.ObservationRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:     projectRepo,
		observationRepo: observationRepo,
		logger:          logger,
	}
}

// Create creates a new project. The projectCode natural key must be unique.
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDTO, error) {
	existing, err := s.projectRepo.GetByCode(ctx, req.ProjectCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check project code: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateProjectCode
	}

	project := &domain.Project{
		ProjectCode:              req.ProjectCode,
		ProjectName:              req.ProjectName,
		ProjectManagerContractor: req.ProjectManagerContractor,
		ProjectManagerClient:     req.ProjectManagerClient,
		ClientName:               req.ClientName,
		Contractor:               req.Contractor,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		// The unique index is the last line of defense against a racing create
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "Duplicate entry") {
			return nil, ErrDuplicateProjectCode
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

// Update applies a typed partial update to a project
func (s *ProjectService) Update(ctx context.Context, id uint, req *domain.UpdateProjectRequest) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.ProjectCode != nil {
		project.ProjectCode = *req.ProjectCode
	}
	if req.ProjectName != nil {
		project.ProjectName = *req.ProjectName
	}
	if req.ProjectManagerContractor != nil {
		project.ProjectManagerContractor = *req.ProjectManagerContractor
	}
	if req.ProjectManagerClient != nil {
		project.ProjectManagerClient = *req.ProjectManagerClient
	}
	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.Contractor != nil {
		project.Contractor = *req.Contractor
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

// Delete removes a project unless observations still reference its code
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	count, err := s.observationRepo.CountByProjectCode(ctx, project.ProjectCode)
	if err != nil {
		return fmt.Errorf("failed to count observations: %w", err)
	}
	if count > 0 {
		return &ReferencedError{Resource: "project", Count: count}
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Info("project deleted",
		zap.Uint("id", id),
		zap.String("projectCode", project.ProjectCode),
	)
	return nil
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.ProjectDTO, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return mapper.ToProjectDTOs(projects), nil
}
