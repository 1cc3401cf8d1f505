package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventease/internal/domain"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{
			name: "fenced json block",
			text: "```json\n{\"estimatedTurnout\":42}\n```",
			want: `{"estimatedTurnout":42}`,
		},
		{
			name: "fence without language tag",
			text: "Here you go:\n```\n{\"a\": 1}\n```\nAnything else?",
			want: `{"a": 1}`,
		},
		{
			name: "bare object in prose",
			text: `Based on the data, the answer is {"estimatedTurnout": 42, "confidence": "high"} as requested.`,
			want: `{"estimatedTurnout": 42, "confidence": "high"}`,
		},
		{
			name: "nested object",
			text: `{"outer": {"inner": 1}}`,
			want: `{"outer": {"inner": 1}}`,
		},
		{
			name: "braces inside strings do not confuse the scan",
			text: `{"note": "use {curly} braces", "n": 1}`,
			want: `{"note": "use {curly} braces", "n": 1}`,
		},
		{
			name:    "plain prose with no braces",
			text:    "I cannot provide a prediction at this time.",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			text:    `{"oops": 1`,
			wantErr: true,
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNoJSONFound)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
