package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	const payload = `{"required_skills": ["Go"], "preferred_skills": []}`

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare object", input: payload, want: payload},
		{name: "json fence", input: "```json\n" + payload + "\n```", want: payload},
		{name: "plain fence", input: "```\n" + payload + "\n```", want: payload},
		{name: "language tag fence", input: "```javascript\n" + payload + "\n```", want: payload},
		{name: "preamble", input: "Here are the requirements:\n" + payload, want: payload},
		{name: "trailing chatter", input: payload + "\nLet me know if you need more.", want: payload},
		{name: "array", input: `Skills: ["Go", "AWS"] done`, want: `["Go", "AWS"]`},
		{name: "no json", input: "I could not read the posting.", want: "I could not read the posting."},
		{name: "unbalanced", input: `{"required_skills": [`, want: `{"required_skills": [`},
		{name: "surrounding whitespace", input: "\n\n  " + payload + "  \n", want: payload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractBalanced(t *testing.T) {
	tests := []struct {
		name  string
		input string
		open  byte
		close byte
		want  string
	}{
		{name: "nested object", input: `{"a": {"b": 1}} tail`, open: '{', close: '}', want: `{"a": {"b": 1}}`},
		{name: "brace inside string", input: `{"text": "use } carefully"} x`, open: '{', close: '}', want: `{"text": "use } carefully"}`},
		{name: "escaped quote", input: `{"text": "say \"}\" now"}`, open: '{', close: '}', want: `{"text": "say \"}\" now"}`},
		{name: "nested array", input: `[[1, 2], [3]] rest`, open: '[', close: ']', want: `[[1, 2], [3]]`},
		{name: "wrong opener", input: `x{"a": 1}`, open: '{', close: '}', want: ""},
		{name: "empty", input: "", open: '[', close: ']', want: ""},
		{name: "never closes", input: `[1, 2`, open: '[', close: ']', want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBalanced(tt.input, tt.open, tt.close))
		})
	}
}

func TestExtractJSONHelpers(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, extractJSONObject(`{"a": 1}, {"b": 2}`))
	assert.Equal(t, "", extractJSONObject(`[1]`))
	assert.Equal(t, `["x"]`, extractJSONArray(`["x"] and more`))
	assert.Equal(t, "", extractJSONArray(`{"a": 1}`))
}
