package generation

import (
	"regexp"
	"strings"
	"unicode"
)

// Default word window for enhanced text.
const (
	DefaultMinWords = 40
	DefaultMaxWords = 80
)

// SanitizedText is provider output that satisfies the length and
// punctuation contract.
type SanitizedText struct {
	Body      string
	WordCount int
}

// fillerSentences pad short output, in order, one sentence at a time.
var fillerSentences = []string{
	"I focus on clarity, usability, and performance to deliver reliable results.",
	"I prioritize accessibility, responsive design, and clean, maintainable code.",
	"My work balances technical rigor with thoughtful user experience and collaboration.",
	"I communicate openly and keep stakeholders aligned from planning through delivery.",
	"I keep learning new tools and practices to raise the quality of every project.",
}

// cleanupStep is one named text transformation. Steps run in slice order.
type cleanupStep struct {
	name  string
	apply func(string) string
}

var cleanupSteps = []cleanupStep{
	{name: "strip_code_fences", apply: stripCodeFences},
	{name: "strip_enclosing_quotes", apply: stripEnclosingQuotes},
	{name: "strip_leading_non_word", apply: stripLeadingNonWord},
	{name: "drop_echoed_instructions", apply: dropEchoedInstructions},
	{name: "drop_list_lines", apply: dropListLines},
	{name: "collapse_whitespace", apply: collapseWhitespace},
}

var (
	codeFenceRe     = regexp.MustCompile("(?s)```.*?```")
	echoLeadRe      = regexp.MustCompile(`(?i)^(?:The user wants|User input|Instructions?|Task)\b`)
	guidelineLineRe = regexp.MustCompile(`(?im)^[ \t]*guidelines`)
	listItemRe      = regexp.MustCompile(`^(?:[-*+•]|\d+[.)])(?:\s|$)`)
)

// Sanitize cleans raw provider text and forces it into [minWords, maxWords]
// words ending in terminal punctuation. Blank input yields an empty result.
//
// Padding is best effort: once the filler pool is exhausted the result may
// still hold fewer than minWords words.
func Sanitize(raw string, minWords, maxWords int) SanitizedText {
	if strings.TrimSpace(raw) == "" {
		return SanitizedText{}
	}
	if minWords < 0 {
		minWords = 0
	}
	if maxWords < minWords {
		maxWords = minWords
	}

	cleaned := raw
	for _, step := range cleanupSteps {
		cleaned = step.apply(cleaned)
	}

	words := strings.Fields(cleaned)
	if len(words) > maxWords {
		return finish(words[:maxWords])
	}

	if len(words) < minWords {
		words = pad(words, minWords)
		if len(words) > maxWords {
			words = words[:maxWords]
		}
	}

	return finish(words)
}

func stripCodeFences(s string) string {
	return codeFenceRe.ReplaceAllString(s, " ")
}

// stripEnclosingQuotes drops one leading and one trailing double quote.
// Single quotes are only dropped as a pair, since a lone trailing apostrophe
// is usually part of a word.
func stripEnclosingQuotes(s string) string {
	if t := strings.TrimLeftFunc(s, unicode.IsSpace); strings.HasPrefix(t, `"`) {
		s = t[1:]
	}
	if t := strings.TrimRightFunc(s, unicode.IsSpace); strings.HasSuffix(t, `"`) {
		s = t[:len(t)-1]
	}

	t := strings.TrimSpace(s)
	if len(t) >= 2 && strings.HasPrefix(t, "'") && strings.HasSuffix(t, "'") {
		s = t[1 : len(t)-1]
	}
	return s
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// stripLeadingNonWord removes markdown or meta prefixes before the first
// word character. Text without any word character is left alone.
func stripLeadingNonWord(s string) string {
	if i := strings.IndexFunc(s, isWordRune); i > 0 {
		return s[i:]
	}
	return s
}

// dropEchoedInstructions removes prompt text the model repeated back.
func dropEchoedInstructions(s string) string {
	if echoLeadRe.MatchString(s) {
		return ""
	}
	if loc := guidelineLineRe.FindStringIndex(s); loc != nil {
		return s[:loc[0]]
	}
	return s
}

func dropListLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if listItemRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, " ")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func pad(words []string, minWords int) []string {
	if len(words) > 0 {
		last := len(words) - 1
		words[last] = terminate(words[last])
	}
	for _, sentence := range fillerSentences {
		if len(words) >= minWords {
			break
		}
		words = append(words, strings.Fields(sentence)...)
	}
	return words
}

func finish(words []string) SanitizedText {
	body := terminate(strings.Join(words, " "))
	return SanitizedText{Body: body, WordCount: len(strings.Fields(body))}
}

func hasTerminalPunctuation(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

// terminate makes s end in '.', '!' or '?'. A trailing comma, semicolon or
// colon is replaced rather than followed by the period.
func terminate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || hasTerminalPunctuation(s) {
		return s
	}
	if trimmed := strings.TrimRight(s, ",;:"); trimmed != "" {
		s = trimmed
	}
	if hasTerminalPunctuation(s) {
		return s
	}
	return s + "."
}
