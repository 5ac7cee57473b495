package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/mapper"
	"github.com/simonindia/safety-api/internal/repository"
	"github.com/simonindia/safety-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Attachment prefixes used when generating blob filenames
const (
	prefixObservationPhoto = "observation"
	prefixCompliancePhoto  = "compliance"
	prefixComplianceReport = "report"
)

// ObservationService handles the observation lifecycle. Attachment fields
// are routed through the blob store before the record is written; the blob
// write and the database write are deliberately not atomic (a failed record
// write can orphan a blob, which only costs disk space).
type ObservationService struct {
	observationRepo *repository.ObservationRepository
	blobs           storage.BlobStore
	logger          *zap.Logger
}

// NewObservationService creates a new observation service instance
func NewObservationService(
	observationRepo *repository.ObservationRepository,
	blobs storage.BlobStore,
	logger *zap.Logger,
) *ObservationService {
	return &ObservationService{
		observationRepo: observationRepo,
		blobs:           blobs,
		logger:          logger,
	}
}

// Create persists a new observation. Required-field validation happens at
// the handler; defaults for status and contractor are applied here.
func (s *ObservationService) Create(ctx context.Context, req *domain.CreateObservationRequest) (*domain.ObservationDTO, error) {
	obs := &domain.Observation{
		ProjectCode:      req.ProjectCode,
		Date:             req.Date,
		RaisedBy:         req.RaisedBy,
		IssueType:        req.IssueType,
		SafetyCategory:   req.SafetyCategory,
		Observation:      req.Observation,
		ObservationPhoto: s.resolveAttachment(ctx, req.ObservationPhoto, prefixObservationPhoto),
		Contractor:       req.Contractor,
		SubContractor:    req.SubContractor,
		Status:           req.Status,
		Compliance:       req.Compliance,
		ComplianceDate:   req.ComplianceDate,
		CompliancePhoto:  s.resolveAttachment(ctx, req.CompliancePhoto, prefixCompliancePhoto),
		ComplianceReport: s.resolveAttachment(ctx, req.ComplianceReport, prefixComplianceReport),
	}
	if obs.Contractor == "" {
		obs.Contractor = domain.DefaultContractor
	}
	if obs.Status == "" {
		obs.Status = domain.DefaultStatus
	}

	if err := s.observationRepo.Create(ctx, obs); err != nil {
		return nil, fmt.Errorf("failed to create observation: %w", err)
	}

	dto := mapper.ToObservationDTO(obs)
	return &dto, nil
}

// Update applies a typed partial update. Attachment pointers that carry a
// non-empty value are re-run through the blob store; an explicit empty
// string clears the field without touching storage.
func (s *ObservationService) Update(ctx context.Context, id uint, req *domain.UpdateObservationRequest) (*domain.ObservationDTO, error) {
	obs, err := s.observationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrObservationNotFound
		}
		return nil, fmt.Errorf("failed to get observation: %w", err)
	}

	if req.ProjectCode != nil {
		obs.ProjectCode = *req.ProjectCode
	}
	if req.Date != nil {
		obs.Date = *req.Date
	}
	if req.RaisedBy != nil {
		obs.RaisedBy = *req.RaisedBy
	}
	if req.IssueType != nil {
		obs.IssueType = *req.IssueType
	}
	if req.SafetyCategory != nil {
		obs.SafetyCategory = *req.SafetyCategory
	}
	if req.Observation != nil {
		obs.Observation = *req.Observation
	}
	if req.Contractor != nil {
		obs.Contractor = *req.Contractor
	}
	if req.SubContractor != nil {
		obs.SubContractor = *req.SubContractor
	}
	if req.Status != nil {
		obs.Status = *req.Status
	}
	if req.Compliance != nil {
		obs.Compliance = *req.Compliance
	}
	if req.ComplianceDate != nil {
		obs.ComplianceDate = *req.ComplianceDate
	}
	if req.ObservationPhoto != nil {
		obs.ObservationPhoto = s.updateAttachment(ctx, *req.ObservationPhoto, prefixObservationPhoto)
	}
	if req.CompliancePhoto != nil {
		obs.CompliancePhoto = s.updateAttachment(ctx, *req.CompliancePhoto, prefixCompliancePhoto)
	}
	if req.ComplianceReport != nil {
		obs.ComplianceReport = s.updateAttachment(ctx, *req.ComplianceReport, prefixComplianceReport)
	}

	if err := s.observationRepo.Update(ctx, obs); err != nil {
		return nil, fmt.Errorf("failed to update observation: %w", err)
	}

	dto := mapper.ToObservationDTO(obs)
	return &dto, nil
}

// Delete removes an observation unconditionally
func (s *ObservationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.observationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrObservationNotFound
		}
		return fmt.Errorf("failed to get observation: %w", err)
	}

	if err := s.observationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete observation: %w", err)
	}
	return nil
}

// resolveAttachment stores inline payloads and passes existing references
// through. Storage failures degrade to an empty reference rather than
// failing the whole mutation.
func (s *ObservationService) resolveAttachment(ctx context.Context, value, prefix string) string {
	if value == "" {
		return ""
	}
	ref, err := storage.StoreDataURL(ctx, s.blobs, value, prefix)
	if err != nil {
		s.logger.Warn("failed to store attachment, dropping reference",
			zap.Error(err),
			zap.String("prefix", prefix),
		)
		return ""
	}
	return ref
}

// updateAttachment preserves an explicit clear-to-empty without a blob-store
// round trip
func (s *ObservationService) updateAttachment(ctx context.Context, value, prefix string) string {
	if value == "" {
		return ""
	}
	return s.resolveAttachment(ctx, value, prefix)
}
