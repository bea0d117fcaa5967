package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/prompts"
)

// ExtractionSchema describes the JSON object a model is asked to produce.
type ExtractionSchema struct {
	Name        string
	Description string // task preamble placed at the top of the prompt
	Fields      []SchemaField
}

// SchemaField is one key of the requested object.
type SchemaField struct {
	Name        string
	Type        string // shown to the model; defaults to string
	Description string
	Required    bool
}

// BuildExtractionPrompt lays out the preamble, the expected object and the
// posting text, in that order.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\nRespond with one JSON object shaped like this:\n{\n")
	for i, field := range schema.Fields {
		sb.WriteString(describeField(field))
		if i < len(schema.Fields)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n\n")

	sb.WriteString(prompts.MustGet("extraction.json", "output-rules"))
	fmt.Fprintf(&sb, "\n\nJob posting:\n\"\"\"\n%s\n\"\"\"\n", inputText)
	return sb.String()
}

func describeField(f SchemaField) string {
	typ := f.Type
	if typ == "" {
		typ = "string"
	}
	line := fmt.Sprintf("  %q: %s", f.Name, typ)
	if f.Required {
		line += " (required)"
	}
	if f.Description != "" {
		line += " // " + f.Description
	}
	return line
}

// RequirementsSchema returns the extraction schema for job postings. Field
// names match the remote response schema in the schemas package.
func RequirementsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "JobRequirements",
		Description: prompts.MustGet("extraction.json", "job-requirements-description"),
		Fields: []SchemaField{
			{
				Name:        "required_skills",
				Type:        `["string"]`,
				Description: "Skills, tools and technologies the candidate must have, as short canonical names",
				Required:    true,
			},
			{
				Name:        "preferred_skills",
				Type:        `["string"]`,
				Description: "Nice-to-have or bonus skills, as short canonical names",
				Required:    true,
			},
			{
				Name:        "years_experience",
				Type:        "integer or null",
				Description: "Minimum years of experience asked for; the lower bound of a range",
			},
			{
				Name:        "education_level",
				Type:        `"bachelor" | "master" | "phd" | "associate" | null`,
				Description: "Minimum degree asked for",
			},
			{
				Name:        "responsibilities",
				Type:        `["string"]`,
				Description: "Key duties of the role, copied verbatim",
				Required:    true,
			},
		},
	}
}
