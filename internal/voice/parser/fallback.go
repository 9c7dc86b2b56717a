package parser

import (
	"regexp"
	"strings"

	"github.com/minakianandclaude/LifeTracker/internal/voice"
)

var (
	leadingFiller   = regexp.MustCompile(`(?i)^(add|create|remind me to|i need to)\s+`)
	trailingListRef = regexp.MustCompile(`(?i)\s+(to my list|to inbox|to my inbox)$`)
)

// cleanFallbackTitle strips a leading filler phrase and a trailing list reference.
// If nothing is left the input is returned untouched.
func cleanFallbackTitle(input string) string {
	title := leadingFiller.ReplaceAllString(input, "")
	title = trailingListRef.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	if title == "" {
		return input
	}
	return title
}

func fallback(rawInput, reason string) voice.ParsedTask {
	return voice.ParsedTask{
		Title:        cleanFallbackTitle(rawInput),
		Confidence:   voice.ConfidenceLow,
		ParseWarning: true,
		ParseErrors:  &reason,
	}
}
