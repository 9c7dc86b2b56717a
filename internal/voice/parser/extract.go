package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/minakianandclaude/LifeTracker/internal/voice"
)

// firstBracePair is the shortest {...} span. It only picks the span to report
// when no embedded object decodes.
var firstBracePair = regexp.MustCompile(`\{[\s\S]*?\}`)

// extractTitle pulls the trimmed "title" string out of a model reply.
func extractTitle(reply string) (string, error) {
	obj, err := findJSONObject(reply)
	if err != nil {
		return "", err
	}

	res := gjson.Get(obj, "title")
	if !res.Exists() || res.Type != gjson.String {
		return "", voice.ErrMissingTitle
	}

	title := strings.TrimSpace(res.String())
	if title == "" {
		return "", voice.ErrEmptyTitle
	}
	return title, nil
}

// findJSONObject returns the first complete JSON object embedded in text.
// Every '{' is tried as a start position and decoded with encoding/json, so nested
// objects and braces inside strings are handled.
func findJSONObject(text string) (string, error) {
	for i := strings.IndexByte(text, '{'); i >= 0; {
		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&raw); err == nil {
			return string(raw), nil
		}

		next := strings.IndexByte(text[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}

	candidate := firstBracePair.FindString(text)
	if candidate == "" {
		return "", voice.ErrNoJSON
	}

	var v any
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return "", fmt.Errorf("JSON parse error: %w", err)
	}
	return candidate, nil
}
