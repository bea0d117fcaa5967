package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

const sectionedPosting = `Senior Backend Engineer

About Us:
We offer great benefits and AWS credits.

What You'll Do:
- Design and build Python microservices on AWS
- Mentor junior engineers
- Own on-call rotation

Requirements:
- 5+ years of experience with Python
- Experience with PostgreSQL and Docker
- Bachelor's degree in Computer Science or equivalent
- 3-5 yrs working with k8s

Nice to have:
- Terraform
- Kafka experience, a plus
`

func TestLocalExtractor_SectionedPosting(t *testing.T) {
	out := NewLocalExtractor(nil).Extract(context.Background(), sectionedPosting)

	require.NoError(t, out.Err)
	assert.Equal(t, types.ExtractionLocal, out.Source)
	assert.Equal(t, []string{"AWS", "Docker", "Kubernetes", "Microservices", "PostgreSQL", "Python"}, out.RequiredSkills)
	assert.Equal(t, []string{"Kafka", "Terraform"}, out.PreferredSkills)
	require.NotNil(t, out.YearsExperience)
	assert.Equal(t, 5, *out.YearsExperience)
	require.NotNil(t, out.EducationLevel)
	assert.Equal(t, EducationBachelor, *out.EducationLevel)
	assert.Equal(t, []string{
		"Design and build Python microservices on AWS",
		"Mentor junior engineers",
		"Own on-call rotation",
	}, out.Responsibilities)
	assert.Equal(t, 4, out.Signals())

	req := out.Requirements()
	assert.Equal(t, 1.0, req.ConfidenceScore)
	assert.Equal(t, types.ExtractionLocal, req.ExtractionMethod)
}

func TestLocalExtractor_UnsectionedPosting(t *testing.T) {
	posting := `We are hiring a data engineer.
- Build pipelines with Spark and Airflow
- Partner with analysts
Python required. Kubernetes is a plus.`

	out := NewLocalExtractor(nil).Extract(context.Background(), posting)

	assert.Equal(t, []string{"Airflow", "Python", "Spark"}, out.RequiredSkills)
	assert.Equal(t, []string{"Kubernetes"}, out.PreferredSkills)
	assert.Nil(t, out.YearsExperience)
	assert.Nil(t, out.EducationLevel)
	assert.Equal(t, []string{"Build pipelines with Spark and Airflow", "Partner with analysts"}, out.Responsibilities)
	assert.Equal(t, 0.5, out.Requirements().ConfidenceScore)
}

func TestLocalExtractor_InlineHeader(t *testing.T) {
	out := NewLocalExtractor(nil).Extract(context.Background(), "Requirements: 5+ years of Go")

	assert.Equal(t, []string{"Go"}, out.RequiredSkills)
	require.NotNil(t, out.YearsExperience)
	assert.Equal(t, 5, *out.YearsExperience)
}

func TestLocalExtractor_HeaderLookalikes(t *testing.T) {
	tests := []struct {
		name      string
		posting   string
		required  []string
		preferred []string
	}{
		{
			name:     "skills before a colon stay content",
			posting:  "Skills in Kubernetes and Terraform: must have",
			required: []string{"Kubernetes", "Terraform"},
		},
		{
			name:     "compensation and bonus is not a preferred section",
			posting:  "Responsibilities:\n- Build Python services\nCompensation and bonus\n- Java perks program",
			required: []string{"Python"},
		},
		{
			name:     "ampersand and hyphen compounds are not language names",
			posting:  "Requirements:\n- Python\n- Partner with our R&D group and C-suite\n- Go-to-market experience",
			required: []string{"Python"},
		},
		{
			name:      "header words before a colon still switch sections",
			posting:   "Nice to have: Terraform\nMust have: Python",
			required:  []string{"Python"},
			preferred: []string{"Terraform"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewLocalExtractor(nil).Extract(context.Background(), tt.posting)

			require.NoError(t, out.Err)
			assert.ElementsMatch(t, tt.required, out.RequiredSkills)
			assert.ElementsMatch(t, tt.preferred, out.PreferredSkills)
		})
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		text string
		want section
		rest string
		ok   bool
	}{
		{text: "Requirements: 5+ years of Go", want: sectionRequired, rest: "5+ years of Go", ok: true},
		{text: "What You'll Do:", want: sectionResponsibilities, ok: true},
		{text: "Compensation and bonus", want: sectionOther, ok: true},
		{text: "Bonus points", want: sectionPreferred, ok: true},
		{text: "Skills in Kubernetes and Terraform: must have", ok: false},
		{text: "Python experience required", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, rest, ok := parseHeader(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestLocalExtractor_RequiredWinsOverPreferred(t *testing.T) {
	posting := `Requirements:
- Python
Preferred:
- Python and Django`

	out := NewLocalExtractor(nil).Extract(context.Background(), posting)
	assert.Equal(t, []string{"Python"}, out.RequiredSkills)
	assert.Equal(t, []string{"Django"}, out.PreferredSkills)
}

func TestLocalExtractor_NoSignals(t *testing.T) {
	out := NewLocalExtractor(nil).Extract(context.Background(), "Join our friendly team!")

	assert.Empty(t, out.RequiredSkills)
	assert.Empty(t, out.PreferredSkills)
	assert.Equal(t, 0, out.Signals())

	req := out.Requirements()
	assert.Equal(t, 0.0, req.ConfidenceScore)
	assert.NotNil(t, req.RequiredSkills)
	assert.NotNil(t, req.KeyResponsibilities)
}

func TestParseYears(t *testing.T) {
	tests := []struct {
		text    string
		section section
		want    int
		ok      bool
	}{
		{"5+ years of experience", sectionNone, 5, true},
		{"3-5 yrs of industry experience", sectionNone, 3, true},
		{"2 to 4 years experience", sectionNone, 2, true},
		{"three (3) years of professional experience", sectionNone, 3, true},
		{"7 years", sectionRequired, 7, true},
		{"We have been in business 40 years", sectionNone, 0, false},
		{"Minimum 7 yrs", sectionNone, 0, false},
		{"45 years of experience", sectionRequired, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := parseYears(tt.text, tt.section)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEducation(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Bachelor's degree in Computer Science", EducationBachelor},
		{"BS/MS in CS", EducationBachelor},
		{"MS or PhD preferred", EducationMaster},
		{"Ph.D. in Statistics", EducationPhD},
		{"Associate degree or equivalent experience", EducationAssociate},
		{"Degree in engineering", EducationBachelor},
		{"Certified Scrum Master", ""},
		{"Build dashboards", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, _ := parseEducation(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeEducationLevel(t *testing.T) {
	assert.Equal(t, EducationBachelor, NormalizeEducationLevel("Bachelor"))
	assert.Equal(t, EducationMaster, NormalizeEducationLevel("Master's degree"))
	assert.Equal(t, EducationPhD, NormalizeEducationLevel("doctorate"))
	assert.Equal(t, EducationPhD, NormalizeEducationLevel("phd"))
	assert.Equal(t, "", NormalizeEducationLevel("high school"))
	assert.Equal(t, "", NormalizeEducationLevel(""))
}

func TestSplitSections(t *testing.T) {
	lines := splitSections("Key Responsibilities\n* Ship features\nPython experience required\nBenefits:\n- Dental")

	require.Len(t, lines, 3)
	assert.Equal(t, line{text: "Ship features", section: sectionResponsibilities, bullet: true}, lines[0])
	assert.Equal(t, line{text: "Python experience required", section: sectionResponsibilities}, lines[1])
	assert.Equal(t, sectionOther, lines[2].section)
}
