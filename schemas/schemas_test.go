package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"common.schema.json",
	"accomplishments.schema.json",
	"job_requirements.schema.json",
	"scored_accomplishments.schema.json",
	"tailored_resume.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasSchema, "schema should declare $schema")
		})
	}
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJobRequirementsSchema(t *testing.T) {
	valid := `{
		"required_skills": ["Python", "AWS"],
		"preferred_skills": ["Kubernetes"],
		"years_experience": 5,
		"education_level": "bachelor",
		"key_responsibilities": ["Build services"],
		"confidence_score": 0.75,
		"extraction_method": "hybrid"
	}`
	assert.NoError(t, schemas.ValidateJSON("job_requirements.schema.json", writeDoc(t, valid)))

	invalid := `{
		"required_skills": ["Python"],
		"preferred_skills": [],
		"years_experience": null,
		"education_level": null,
		"key_responsibilities": [],
		"confidence_score": 1.5,
		"extraction_method": "guess"
	}`
	err := schemas.ValidateJSON("job_requirements.schema.json", writeDoc(t, invalid))
	require.Error(t, err)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
}

func TestTailoredResumeSchema(t *testing.T) {
	valid := `{
		"selected_accomplishments": [{
			"accomplishment_id": "a1",
			"final_score": 0.82,
			"skill_match_score": 0.93,
			"semantic_score": 0.6,
			"recency_score": 1,
			"metrics_score": 0.9,
			"matched_skills": ["AWS", "Python"],
			"reasons": ["Demonstrates AWS"]
		}],
		"skill_coverage": {"AWS": true, "Python": true},
		"coverage_percentage": 100,
		"gaps": [],
		"recommendations": []
	}`
	assert.NoError(t, schemas.ValidateJSON("tailored_resume.schema.json", writeDoc(t, valid)))

	missingScore := `{
		"selected_accomplishments": [{"accomplishment_id": "a1"}],
		"skill_coverage": {},
		"coverage_percentage": 0,
		"gaps": [],
		"recommendations": []
	}`
	assert.Error(t, schemas.ValidateJSON("tailored_resume.schema.json", writeDoc(t, missingScore)))
}

func TestAccomplishmentsSchema(t *testing.T) {
	valid := `{"accomplishments": [{"id": "a1", "text": "Shipped", "company_id": "acme", "is_current": true}]}`
	assert.NoError(t, schemas.ValidateJSON("accomplishments.schema.json", writeDoc(t, valid)))

	invalid := `{"accomplishments": [{"text": "no id"}]}`
	assert.Error(t, schemas.ValidateJSON("accomplishments.schema.json", writeDoc(t, invalid)))
}
