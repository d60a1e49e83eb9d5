package generation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Skill list bounds.
const (
	MinSuggestedSkills = 5
	MaxSkills          = 8
	MaxFallbackSkills  = 6
	MaxSkillNameLength = 60
)

// ErrMalformedSkillList is returned when a provider response does not hold a
// JSON array of strings.
var ErrMalformedSkillList = errors.New("malformed skill list")

//go:embed fallback_skills.yaml
var fallbackSkillsYAML []byte

type keywordSkills struct {
	Keyword string   `yaml:"keyword"`
	Skills  []string `yaml:"skills"`
}

type skillTable struct {
	Keywords []keywordSkills `yaml:"keywords"`
	Default  []string        `yaml:"default"`
}

var (
	fallbackTable   = mustLoadSkillTable(fallbackSkillsYAML)
	skillListSchema = jsonschema.MustCompileString("skill-list.json", `{
		"type": "array",
		"items": {"type": "string"}
	}`)
)

func mustLoadSkillTable(data []byte) skillTable {
	var table skillTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		panic(fmt.Sprintf("generation: invalid fallback skill table: %v", err))
	}
	return table
}

// ParseSkills turns a provider response into a skill list. It never fails:
// when raw holds no usable JSON array, the keyword table is consulted with
// prompt instead.
func ParseSkills(raw, prompt string, existing []string) []string {
	candidates, err := DecodeSkillList(raw)
	if err != nil {
		return FallbackSkills(prompt, existing)
	}
	return dedupeSkills(candidates, existing, MaxSkills)
}

// DecodeSkillList extracts the outermost [...] span of raw and decodes it as
// a JSON array of strings.
func DecodeSkillList(raw string) ([]string, error) {
	text := strings.TrimSpace(raw)
	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
		text = text[start : end+1]
	}

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSkillList, err)
	}
	if err := skillListSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSkillList, err)
	}

	items := doc.([]any)
	skills := make([]string, 0, len(items))
	for _, item := range items {
		skills = append(skills, item.(string))
	}
	return skills, nil
}

// FallbackSkills returns the curated list of the first keyword found in the
// lowercased prompt, or the generic soft skills when none matches.
func FallbackSkills(prompt string, existing []string) []string {
	lower := strings.ToLower(prompt)
	for _, entry := range fallbackTable.Keywords {
		if strings.Contains(lower, entry.Keyword) {
			return dedupeSkills(entry.Skills, existing, MaxFallbackSkills)
		}
	}
	return dedupeSkills(fallbackTable.Default, existing, MaxFallbackSkills)
}

// dedupeSkills trims candidates and keeps at most limit of them, dropping
// blanks, names longer than MaxSkillNameLength, and anything matching an
// earlier candidate or an existing skill case-insensitively.
func dedupeSkills(candidates, existing []string, limit int) []string {
	seen := make(map[string]struct{}, len(existing)+len(candidates))
	for _, skill := range existing {
		seen[strings.ToLower(strings.TrimSpace(skill))] = struct{}{}
	}

	skills := make([]string, 0, min(len(candidates), limit))
	for _, candidate := range candidates {
		if len(skills) == limit {
			break
		}
		name := strings.TrimSpace(candidate)
		if name == "" || utf8.RuneCountInString(name) > MaxSkillNameLength {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, name)
	}
	return skills
}
