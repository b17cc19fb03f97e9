package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "bare object", text: `{"score": 80}`, want: `{"score": 80}`, wantOK: true},
		{name: "prose around object", text: "Here is the analysis:\n{\"score\": 80}\nHope this helps!", want: `{"score": 80}`, wantOK: true},
		{name: "markdown fence", text: "```json\n{\"a\": {\"b\": 1}}\n```", want: `{"a": {"b": 1}}`, wantOK: true},
		{name: "braces inside strings", text: `note {"label": "use } and { freely", "n": 1} end`, want: `{"label": "use } and { freely", "n": 1}`, wantOK: true},
		{name: "escaped quote in string", text: `{"q": "say \"}\" now"}`, want: `{"q": "say \"}\" now"}`, wantOK: true},
		{name: "two objects returns first", text: `{"a":1} and then {"b":2}`, want: `{"a":1}`, wantOK: true},
		{name: "invalid span skipped", text: `use {placeholders} like this: {"a":1}`, want: `{"a":1}`, wantOK: true},
		{name: "no brace", text: "I cannot help with that.", wantOK: false},
		{name: "empty", text: "", wantOK: false},
		{name: "unbalanced outer brace", text: `{"a": {"b": 1}`, want: `{"b": 1}`, wantOK: true},
		{name: "stray brace in prose", text: "Sure :-{ here is the evaluation:\n{\"score\": 82, \"pillars\": []}", want: `{"score": 82, "pillars": []}`, wantOK: true},
		{name: "never closes", text: `{"score": 80, "pillars": [`, wantOK: false},
		{name: "only invalid spans", text: `{not json} {still not}`, wantOK: false},
		{name: "closing brace first", text: `} {"a":1}`, want: `{"a":1}`, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
