package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRemoteRequirements_Valid(t *testing.T) {
	raw := `{
		"required_skills": ["Python", "AWS"],
		"preferred_skills": ["Kubernetes"],
		"years_experience": 5,
		"education_level": null,
		"responsibilities": ["Build data pipelines"]
	}`
	assert.NoError(t, ValidateRemoteRequirements(raw))
}

func TestValidateRemoteRequirements_MinimalValid(t *testing.T) {
	assert.NoError(t, ValidateRemoteRequirements(`{"required_skills": [], "preferred_skills": []}`))
}

func TestValidateRemoteRequirements_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required skills", `{"preferred_skills": []}`},
		{"skills not strings", `{"required_skills": [1, 2], "preferred_skills": []}`},
		{"years as string", `{"required_skills": [], "preferred_skills": [], "years_experience": "five"}`},
		{"negative years", `{"required_skills": [], "preferred_skills": [], "years_experience": -1}`},
		{"not an object", `["Python"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRemoteRequirements(tt.raw)
			require.Error(t, err)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateRemoteRequirements_Malformed(t *testing.T) {
	err := ValidateRemoteRequirements(`{not json`)
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
