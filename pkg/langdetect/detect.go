// Package langdetect resolves the display language of fenced code blocks.
// The scanner reports only what a fence declares; this package normalizes
// declared tags (golang -> go) and, when a fence has no info string,
// guesses the language from the block's content using go-enry.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// fallback is returned when no language can be determined.
const fallback = "text"

// aliases maps common fence tags to their canonical form.
//
//nolint:gochecknoglobals // Read-only lookup table.
var aliases = map[string]string{
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
	"py":         "python",
	"rb":         "ruby",
	"sh":         "bash",
	"shell":      "bash",
	"zsh":        "bash",
	"yml":        "yaml",
	"dockerfile": "dockerfile",
	"md":         "markdown",
}

// candidates are the languages the classifier chooses between. Keeping
// the set small makes low-confidence results less likely.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Normalize canonicalizes a declared fence tag. Unknown tags pass
// through lower-cased; an empty tag stays empty.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if canonical, ok := aliases[tag]; ok {
		return canonical
	}
	return tag
}

// Detect guesses the language of code content. It returns "text" when
// the content is empty or detection confidence is low.
func Detect(content string) string {
	if strings.TrimSpace(content) == "" {
		return fallback
	}

	data := []byte(content)

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(data); safe {
		return Normalize(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(data, candidates); safe && lang != "" {
		return Normalize(lang)
	}

	return fallback
}

// Resolve returns the language to display for a code block: the declared
// tag when present (normalized), otherwise a content-based guess.
func Resolve(declared, content string) string {
	if declared != "" {
		return Normalize(declared)
	}
	return Detect(content)
}
