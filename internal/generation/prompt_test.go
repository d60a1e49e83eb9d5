package generation_test

import (
	"testing"

	"github.com/phrazzld/folio-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptEnhance(t *testing.T) {
	req, err := generation.NewRequest(generation.TaskAbout, "I build web apps", 0)
	require.NoError(t, err)

	prompt, err := generation.BuildPrompt(req, []string{"ignored"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Length: 40 to 80 words")
	assert.Contains(t, prompt, "single paragraph")
	assert.Contains(t, prompt, "no markdown, no bullets")
	assert.Contains(t, prompt, "active voice")
	assert.Contains(t, prompt, "Enhance this about me section: I build web apps")
	assert.NotContains(t, prompt, "ignored")
}

func TestBuildPromptSkills(t *testing.T) {
	req, err := generation.NewRequest(generation.TaskSkills, "backend engineer", 0)
	require.NoError(t, err)

	t.Run("with_existing_skills", func(t *testing.T) {
		prompt, err := generation.BuildPrompt(req, []string{"Go", "PostgreSQL"})
		require.NoError(t, err)

		assert.Contains(t, prompt, "JSON array")
		assert.Contains(t, prompt, "Include 5-8 relevant skills")
		assert.Contains(t, prompt, `Generate skills based on this prompt: "backend engineer"`)
		assert.Contains(t, prompt, "Existing skills to avoid duplicating: Go, PostgreSQL")
	})

	t.Run("without_existing_skills", func(t *testing.T) {
		prompt, err := generation.BuildPrompt(req, nil)
		require.NoError(t, err)

		assert.NotContains(t, prompt, "Existing skills")
	})
}

func TestBuildPromptDeterministic(t *testing.T) {
	req, err := generation.NewRequest(generation.TaskProject, "a CLI for backups", 0)
	require.NoError(t, err)

	first, err := generation.BuildPrompt(req, nil)
	require.NoError(t, err)
	second, err := generation.BuildPrompt(req, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildPromptUnknownTask(t *testing.T) {
	_, err := generation.BuildPrompt(generation.Request{Task: "poem"}, nil)
	assert.Error(t, err)
}
