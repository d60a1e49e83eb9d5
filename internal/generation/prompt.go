package generation

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

var enhancePromptTemplate = template.Must(template.New("enhance").Parse(
	`You are a professional portfolio content writer. Transform user input into a polished, engaging, and professional {{.Label}}.

Strict output rules:
- Length: {{.MinWords}} to {{.MaxWords}} words
- Output a single paragraph only
- Return ONLY the enhanced text (no quotes, no JSON, no markdown, no bullets, no explanations)
- Keep the original meaning and tone
- Use active voice, concise but impactful language
- Improve clarity and flow; correct grammar and spelling

Enhance this {{.Label}}: {{.Input}}`))

var skillsPromptTemplate = template.Must(template.New("skills").Parse(
	`You are a skills recommendation expert. Based on a user's prompt or description, suggest relevant professional skills.

Output rules:
- Return a JSON array of skill names only
- Include {{.MinSkills}}-{{.MaxSkills}} relevant skills
- Focus on current, in-demand skills
- Skills should be specific and professional
- Do not repeat any skill the user already has
- Format: ["skill1", "skill2", "skill3", ...]
- Return only the JSON array, no explanations

Generate skills based on this prompt: "{{.Input}}"
{{- if .Existing}}
Existing skills to avoid duplicating: {{.Existing}}
{{- end}}`))

type enhancePromptData struct {
	Label    string
	Input    string
	MinWords int
	MaxWords int
}

type skillsPromptData struct {
	Input     string
	Existing  string
	MinSkills int
	MaxSkills int
}

// BuildPrompt renders the provider prompt for req. existingSkills is only
// used by TaskSkills and is listed exactly as given.
//
// The output depends on nothing but the arguments.
func BuildPrompt(req Request, existingSkills []string) (string, error) {
	var (
		tmpl *template.Template
		data any
	)

	switch {
	case req.Task.IsEnhancement():
		tmpl = enhancePromptTemplate
		data = enhancePromptData{
			Label:    req.ContextLabel,
			Input:    req.Input,
			MinWords: DefaultMinWords,
			MaxWords: DefaultMaxWords,
		}
	case req.Task == TaskSkills:
		tmpl = skillsPromptTemplate
		data = skillsPromptData{
			Input:     req.Input,
			Existing:  strings.Join(existingSkills, ", "),
			MinSkills: MinSuggestedSkills,
			MaxSkills: MaxSkills,
		}
	default:
		return "", fmt.Errorf("unknown generation task %q", req.Task)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
