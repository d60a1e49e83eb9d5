package generation_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/folio-api/internal/generation"
	"github.com/stretchr/testify/assert"
)

func endsInTerminalPunctuation(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

func TestSanitizeWordWindow(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantWords int
	}{
		{
			name:      "long_input_truncated_to_max",
			raw:       strings.TrimSpace(strings.Repeat("word ", 120)),
			wantWords: 80,
		},
		{
			name:      "short_input_padded_to_min",
			raw:       "I build web apps today",
			wantWords: 47,
		},
		{
			name:      "echoed_instructions_replaced_by_filler",
			raw:       "The user wants an about me section.",
			wantWords: 42,
		},
		{
			name:      "within_window_untouched",
			raw:       strings.TrimSpace(strings.Repeat("steady ", 60)) + "!",
			wantWords: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generation.Sanitize(tt.raw, generation.DefaultMinWords, generation.DefaultMaxWords)

			assert.Equal(t, tt.wantWords, got.WordCount)
			assert.Len(t, strings.Fields(got.Body), got.WordCount)
			assert.GreaterOrEqual(t, got.WordCount, generation.DefaultMinWords)
			assert.LessOrEqual(t, got.WordCount, generation.DefaultMaxWords)
			assert.True(t, endsInTerminalPunctuation(got.Body), "body %q", got.Body)
		})
	}
}

func TestSanitizeTruncatedEndsWithPeriod(t *testing.T) {
	got := generation.Sanitize(strings.Repeat("alpha beta ", 60), 40, 80)

	assert.Equal(t, 80, got.WordCount)
	assert.True(t, strings.HasSuffix(got.Body, "beta."), "body %q", got.Body)
}

func TestSanitizePaddingTerminatesInput(t *testing.T) {
	got := generation.Sanitize("I build web apps today", 40, 80)

	assert.True(t, strings.HasPrefix(got.Body, "I build web apps today. I focus on clarity"), "body %q", got.Body)
}

func TestSanitizeBlankInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		got := generation.Sanitize(raw, 40, 80)
		assert.Equal(t, generation.SanitizedText{}, got)
	}
}

func TestSanitizePaddingIsBestEffort(t *testing.T) {
	got := generation.Sanitize("Engineer", 100, 120)

	// one input word plus the whole filler pool
	assert.Equal(t, 57, got.WordCount)
	assert.True(t, endsInTerminalPunctuation(got.Body))
}

func TestSanitizeCleanup(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "markdown_heading_and_quotes",
			raw:  `"## Seasoned engineer building reliable systems."`,
			want: "Seasoned engineer building reliable systems.",
		},
		{
			name: "code_fence_removed",
			raw:  "```json\n{\"a\":1}\n```\nSeasoned engineer building reliable systems",
			want: "Seasoned engineer building reliable systems.",
		},
		{
			name: "list_lines_dropped",
			raw:  "Seasoned engineer.\n- Go\n- Rust\n1. Kubernetes\nBuilding reliable systems",
			want: "Seasoned engineer. Building reliable systems.",
		},
		{
			name: "guidelines_tail_dropped",
			raw:  "Seasoned engineer building reliable systems.\nGuidelines: keep it short",
			want: "Seasoned engineer building reliable systems.",
		},
		{
			name: "trailing_comma_replaced",
			raw:  "Builds APIs, services,",
			want: "Builds APIs, services.",
		},
		{
			name: "question_kept",
			raw:  "Need a reliable engineer?",
			want: "Need a reliable engineer?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generation.Sanitize(tt.raw, 1, 80)
			assert.Equal(t, tt.want, got.Body)
		})
	}
}
