package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/minakianandclaude/LifeTracker/internal/voice"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		wantTitle string
		wantErr   error
		errPrefix string
	}{
		{name: "bare object", reply: `{"title": "Buy milk"}`, wantTitle: "Buy milk"},
		{name: "surrounding prose", reply: `Sure! Here you go: {"title": "Call the dentist"} Hope that helps.`, wantTitle: "Call the dentist"},
		{name: "title is trimmed", reply: `{"title": "  Finish the report \n"}`, wantTitle: "Finish the report"},
		{name: "nested object", reply: `{"meta": {"lang": "en"}, "title": "Water plants"}`, wantTitle: "Water plants"},
		{name: "brace inside string", reply: `{"title": "Fix {braces} bug"}`, wantTitle: "Fix {braces} bug"},
		{name: "later valid object wins over broken one", reply: `{oops} then {"title": "Pay rent"}`, wantTitle: "Pay rent"},
		{name: "extra fields ignored", reply: `{"title": "Buy eggs", "list": "groceries", "priority": 1}`, wantTitle: "Buy eggs"},
		{name: "no json", reply: "I could not understand that.", wantErr: voice.ErrNoJSON},
		{name: "unclosed brace", reply: `{"title": "Buy milk"`, wantErr: voice.ErrNoJSON},
		{name: "empty reply", reply: "", wantErr: voice.ErrNoJSON},
		{name: "malformed object", reply: `{title: Buy milk}`, errPrefix: "JSON parse error: "},
		{name: "missing title", reply: `{"task": "Buy milk"}`, wantErr: voice.ErrMissingTitle},
		{name: "title not a string", reply: `{"title": 42}`, wantErr: voice.ErrMissingTitle},
		{name: "title null", reply: `{"title": null}`, wantErr: voice.ErrMissingTitle},
		{name: "empty title", reply: `{"title": ""}`, wantErr: voice.ErrEmptyTitle},
		{name: "whitespace title", reply: `{"title": "   "}`, wantErr: voice.ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := extractTitle(tt.reply)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.errPrefix != "":
				if err == nil || !strings.HasPrefix(err.Error(), tt.errPrefix) {
					t.Fatalf("expected error starting with %q, got %v", tt.errPrefix, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if title != tt.wantTitle {
					t.Errorf("expected %q, got %q", tt.wantTitle, title)
				}
			}
		})
	}
}
