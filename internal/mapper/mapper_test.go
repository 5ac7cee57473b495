package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simonindia/safety-api/internal/domain"
	"github.com/simonindia/safety-api/internal/mapper"
)

func TestToProjectDTO(t *testing.T) {
	project := &domain.Project{
		ID:          7,
		ProjectCode: "I-30059",
		ProjectName: "5th Evaporator",
		ClientName:  "PPL",
		Contractor:  "SIL",
	}

	dto := mapper.ToProjectDTO(project)
	assert.Equal(t, uint(7), dto.ID)
	assert.Equal(t, "I-30059", dto.ProjectCode)
	assert.Equal(t, "5th Evaporator", dto.ProjectName)
	assert.Equal(t, "PPL", dto.ClientName)
}

func TestGroupSubContractorsByProject(t *testing.T) {
	subs := []domain.SubContractor{
		{ID: 1, Name: "RRPL", ProjectCode: "I-30059"},
		{ID: 2, Name: "CHEMDIST", ProjectCode: "I-30059"},
		{ID: 3, Name: "Dynamic", ProjectCode: "I-30060"},
	}

	grouped := mapper.GroupSubContractorsByProject(subs)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["I-30059"], 2)
	assert.Len(t, grouped["I-30060"], 1)
	assert.Equal(t, "Dynamic", grouped["I-30060"][0].Name)
}

func TestGroupSubContractorsByProjectEmpty(t *testing.T) {
	grouped := mapper.GroupSubContractorsByProject(nil)
	assert.NotNil(t, grouped)
	assert.Empty(t, grouped)
}
