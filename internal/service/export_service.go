package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/simonindia/safety-api/internal/config"
	"github.com/simonindia/safety-api/internal/repository"
)

// ExportService flattens current observation state into CSV
type ExportService struct {
	observationRepo *repository.ObservationRepository
	publicPrefix    string
	includeReport   bool
}

// NewExportService creates a new export service instance
func NewExportService(
	observationRepo *repository.ObservationRepository,
	storageCfg *config.StorageConfig,
	exportCfg *config.ExportConfig,
) *ExportService {
	return &ExportService{
		observationRepo: observationRepo,
		publicPrefix:    strings.TrimSuffix(storageCfg.PublicPrefix, "/"),
		includeReport:   exportCfg.IncludeComplianceReport,
	}
}

// WriteCSV writes all observations as CSV, one row per observation in
// descending id order with a 1-based sequence number in column 1. Local blob
// references are rewritten to absolute URLs using baseURL (scheme://host of
// the requesting client); absolute URLs pass through unchanged.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer, baseURL string) error {
	observations, err := s.observationRepo.ListDescending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list observations: %w", err)
	}

	cw := csv.NewWriter(w)

	header := []string{
		"S.No", "Project Code", "Date", "Raised By", "Issue Type",
		"Safety Category", "Observation", "Observation Photo",
		"Sub Contractor", "Status", "Compliance", "Compliance Date",
		"Compliance Photo",
	}
	if s.includeReport {
		header = append(header, "Compliance Report")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, obs := range observations {
		row := []string{
			strconv.Itoa(i + 1),
			obs.ProjectCode,
			obs.Date,
			obs.RaisedBy,
			obs.IssueType,
			obs.SafetyCategory,
			obs.Observation,
			s.absoluteRef(obs.ObservationPhoto, baseURL),
			obs.SubContractor,
			obs.Status,
			obs.Compliance,
			obs.ComplianceDate,
			s.absoluteRef(obs.CompliancePhoto, baseURL),
		}
		if s.includeReport {
			row = append(row, s.absoluteRef(obs.ComplianceReport, baseURL))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// absoluteRef rewrites local serving paths to absolute URLs; everything else
// (object-storage URLs, legacy values) passes through
func (s *ExportService) absoluteRef(ref, baseURL string) string {
	if strings.HasPrefix(ref, s.publicPrefix+"/") {
		return baseURL + ref
	}
	return ref
}
