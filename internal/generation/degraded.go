package generation

import (
	"fmt"
	"strings"
	"unicode"
)

const degradedTemplate = "I am a %s crafting responsive, accessible, and performant experiences. " +
	"I translate ideas into clean, maintainable interfaces and collaborate closely to ship reliable features. " +
	"I emphasize clarity, usability, and modern best practices to deliver results that feel fast, consistent, " +
	"and user-focused across devices."

// DegradedEnhancement produces offline text for input when the provider
// cannot be used. The result satisfies the same contract as Sanitize with
// the default word window.
func DegradedEnhancement(input string) SanitizedText {
	role := titleCase(collapseWhitespace(input))
	return Sanitize(fmt.Sprintf(degradedTemplate, role), DefaultMinWords, DefaultMaxWords)
}

// titleCase upper-cases the first letter of s and every letter following a
// space or hyphen.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	boundary := true
	for _, r := range s {
		if boundary {
			r = unicode.ToUpper(r)
		}
		boundary = r == ' ' || r == '-'
		b.WriteRune(r)
	}
	return b.String()
}
