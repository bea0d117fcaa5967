package extraction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestMerger_RemotePreferredWithLocalSafetyNet(t *testing.T) {
	local := Outcome{
		Source:          types.ExtractionLocal,
		RequiredSkills:  []string{"Kubernetes", "Python"},
		PreferredSkills: []string{"Terraform"},
		YearsExperience: intPtr(5),
	}
	remote := Outcome{
		Source:           types.ExtractionRemote,
		RequiredSkills:   []string{"AWS", "Python"},
		PreferredSkills:  []string{"Kubernetes"},
		EducationLevel:   strPtr(EducationBachelor),
		Responsibilities: []string{"Build APIs"},
	}

	req := Merger{}.Merge(local, remote)

	assert.Equal(t, types.ExtractionHybrid, req.ExtractionMethod)
	// Kubernetes is required locally and preferred remotely: required wins.
	assert.Equal(t, []string{"AWS", "Kubernetes", "Python"}, req.RequiredSkills)
	// Terraform was omitted by the remote pass and kept from local.
	assert.Equal(t, []string{"Terraform"}, req.PreferredSkills)
	require.NotNil(t, req.YearsExperience)
	assert.Equal(t, 5, *req.YearsExperience)
	require.NotNil(t, req.EducationLevel)
	assert.Equal(t, EducationBachelor, *req.EducationLevel)
	assert.Equal(t, []string{"Build APIs"}, req.KeyResponsibilities)
	// Full signal coverage, Jaccard 2/4.
	assert.InDelta(t, 0.75, req.ConfidenceScore, 1e-9)
}

func TestMerger_AgreementRaisesConfidence(t *testing.T) {
	base := Outcome{RequiredSkills: []string{"Go", "Kafka"}}

	agree := Merger{}.Merge(base, Outcome{RequiredSkills: []string{"Go", "Kafka"}})
	disjoint := Merger{}.Merge(base, Outcome{RequiredSkills: []string{"Java", "Spring"}})

	assert.Greater(t, agree.ConfidenceScore, disjoint.ConfidenceScore)
	assert.InDelta(t, 0.5*0.25+0.5, agree.ConfidenceScore, 1e-9)
	assert.InDelta(t, 0.5*0.25, disjoint.ConfidenceScore, 1e-9)
}

func TestMerger_RemoteYearsOverrideLocal(t *testing.T) {
	req := Merger{}.Merge(
		Outcome{YearsExperience: intPtr(3), EducationLevel: strPtr(EducationMaster)},
		Outcome{YearsExperience: intPtr(5), EducationLevel: strPtr(EducationBachelor)},
	)
	assert.Equal(t, 5, *req.YearsExperience)
	assert.Equal(t, EducationBachelor, *req.EducationLevel)
}

func TestMerger_DegradedRemoteReturnsLocal(t *testing.T) {
	local := Outcome{
		Source:         types.ExtractionLocal,
		RequiredSkills: []string{"Python"},
	}
	remote := Outcome{Source: types.ExtractionRemote, Err: errors.New("timeout")}

	req := Merger{}.Merge(local, remote)

	assert.Equal(t, types.ExtractionLocal, req.ExtractionMethod)
	assert.Equal(t, []string{"Python"}, req.RequiredSkills)
	assert.Equal(t, 0.25, req.ConfidenceScore)
}

func TestMerger_ListsAreDisjoint(t *testing.T) {
	req := Merger{}.Merge(
		Outcome{PreferredSkills: []string{"Docker"}},
		Outcome{RequiredSkills: []string{"docker"}, PreferredSkills: []string{"Docker", "Helm"}},
	)
	assert.Equal(t, []string{"docker"}, req.RequiredSkills)
	assert.Equal(t, []string{"Helm"}, req.PreferredSkills)
}
