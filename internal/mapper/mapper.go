package mapper

import (
	"github.com/simonindia/safety-api/internal/domain"
)

// ToProjectDTO converts Project to ProjectDTO
func ToProjectDTO(project *domain.Project) domain.ProjectDTO {
	return domain.ProjectDTO{
		ID:                       project.ID,
		ProjectCode:              project.ProjectCode,
		ProjectName:              project.ProjectName,
		ProjectManagerContractor: project.ProjectManagerContractor,
		ProjectManagerClient:     project.ProjectManagerClient,
		ClientName:               project.ClientName,
		Contractor:               project.Contractor,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []domain.Project) []domain.ProjectDTO {
	dtos := make([]domain.ProjectDTO, len(projects))
	for i := range projects {
		dtos[i] = ToProjectDTO(&projects[i])
	}
	return dtos
}

// ToSubContractorDTO converts SubContractor to SubContractorDTO
func ToSubContractorDTO(sc *domain.SubContractor) domain.SubContractorDTO {
	return domain.SubContractorDTO{
		ID:          sc.ID,
		Name:        sc.Name,
		ProjectCode: sc.ProjectCode,
	}
}

// ToObservationDTO converts Observation to ObservationDTO
func ToObservationDTO(obs *domain.Observation) domain.ObservationDTO {
	return domain.ObservationDTO{
		ID:               obs.ID,
		ProjectCode:      obs.ProjectCode,
		Date:             obs.Date,
		RaisedBy:         obs.RaisedBy,
		IssueType:        obs.IssueType,
		SafetyCategory:   obs.SafetyCategory,
		Observation:      obs.Observation,
		ObservationPhoto: obs.ObservationPhoto,
		Contractor:       obs.Contractor,
		SubContractor:    obs.SubContractor,
		Status:           obs.Status,
		Compliance:       obs.Compliance,
		ComplianceDate:   obs.ComplianceDate,
		CompliancePhoto:  obs.CompliancePhoto,
		ComplianceReport: obs.ComplianceReport,
	}
}

// ToObservationDTOs converts a slice of observations
func ToObservationDTOs(observations []domain.Observation) []domain.ObservationDTO {
	dtos := make([]domain.ObservationDTO, len(observations))
	for i := range observations {
		dtos[i] = ToObservationDTO(&observations[i])
	}
	return dtos
}

// GroupSubContractorsByProject buckets subcontractors under their project code
func GroupSubContractorsByProject(subs []domain.SubContractor) map[string][]domain.SubContractorDTO {
	grouped := make(map[string][]domain.SubContractorDTO)
	for i := range subs {
		dto := ToSubContractorDTO(&subs[i])
		grouped[dto.ProjectCode] = append(grouped[dto.ProjectCode], dto)
	}
	return grouped
}
