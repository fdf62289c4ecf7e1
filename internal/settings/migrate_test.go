package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeGeneric(t *testing.T, s string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &doc))
	return doc
}

func TestMigrate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantChanged bool
	}{
		{
			name:        "events wrapper and missing type",
			input:       `{"hooks":{"events":{"PreToolUse":[{"matcher":"","hooks":[{"command":"x"}]}]}}}`,
			want:        `{"hooks":{"PreToolUse":[{"matcher":"","hooks":[{"type":"command","command":"x"}]}]}}`,
			wantChanged: true,
		},
		{
			name:        "missing type only",
			input:       `{"model":"opus","hooks":{"Stop":[{"matcher":"","hooks":[{"command":"a"},{"type":"prompt","command":"b"}]}]}}`,
			want:        `{"model":"opus","hooks":{"Stop":[{"matcher":"","hooks":[{"type":"command","command":"a"},{"type":"prompt","command":"b"}]}]}}`,
			wantChanged: true,
		},
		{
			name:        "events wrapper only",
			input:       `{"hooks":{"events":{"Stop":[]}},"other":1}`,
			want:        `{"hooks":{"Stop":[]},"other":1}`,
			wantChanged: true,
		},
		{
			name:  "already current",
			input: `{"hooks":{"Stop":[{"matcher":"","hooks":[{"type":"command","command":"a"}]}]}}`,
			want:  `{"hooks":{"Stop":[{"matcher":"","hooks":[{"type":"command","command":"a"}]}]}}`,
		},
		{
			name:  "no hooks",
			input: `{"model":"opus"}`,
			want:  `{"model":"opus"}`,
		},
		{
			name:  "hooks not an object",
			input: `{"hooks":[1,2]}`,
			want:  `{"hooks":[1,2]}`,
		},
		{
			name:  "unexpected shapes are skipped",
			input: `{"hooks":{"Stop":"nope","Start":[1,{"hooks":"x"},{"hooks":[2]}]}}`,
			want:  `{"hooks":{"Stop":"nope","Start":[1,{"hooks":"x"},{"hooks":[2]}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Migrate(decodeGeneric(t, tt.input))
			assert.Equal(t, tt.wantChanged, changed)

			out, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
		})
	}
}

func TestMigrate_SinglePass(t *testing.T) {
	// A doubly wrapped document is unwrapped once only.
	doc := decodeGeneric(t, `{"hooks":{"events":{"events":{"Stop":[]}}}}`)

	got, changed := Migrate(doc)
	require.True(t, changed)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hooks":{"events":{"Stop":[]}}}`, string(out))
}
