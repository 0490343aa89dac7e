package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/researchsite/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if result := htmlsanitize.Sanitize(""); result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if result := htmlsanitize.Sanitize("Hello, World!"); result != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Bold</strong> and <em>italic</em></p>"
	if result := htmlsanitize.Sanitize(input); result != input {
		t.Errorf("expected safe HTML preserved, got %q", result)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	result := htmlsanitize.Sanitize("<p>Hello</p><script>alert('xss')</script>")
	if result != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	result := htmlsanitize.Sanitize(`<a href="javascript:alert('xss')">Click</a>`)
	if strings.Contains(result, "javascript:") {
		t.Errorf("expected javascript: href to be removed, got %q", result)
	}
}

func TestSanitize_AllowsSafeLinks(t *testing.T) {
	result := htmlsanitize.Sanitize(`<a href="https://example.com">Link</a>`)
	if !strings.Contains(result, "https://example.com") {
		t.Errorf("expected safe link preserved, got %q", result)
	}
}

func TestSanitize_AllowsLists(t *testing.T) {
	input := "<ul><li>Item 1</li><li>Item 2</li></ul>"
	if result := htmlsanitize.Sanitize(input); result != input {
		t.Errorf("expected list preserved, got %q", result)
	}
}

func TestSanitize_RemovesIframe(t *testing.T) {
	result := htmlsanitize.Sanitize(`<p>Content</p><iframe src="https://evil.com"></iframe>`)
	if strings.Contains(result, "iframe") {
		t.Error("expected iframe to be removed")
	}
	if !strings.Contains(result, "Content") {
		t.Error("expected safe content to be preserved")
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Just text", "Just text"},
		{"<b>Bold</b> move", "Bold move"},
		{"  <script>x()</script>Bio  ", "Bio"},
		{"Dr. O'Brien leads R&D", "Dr. O'Brien leads R&D"},
		{`He said "hi"`, `He said "hi"`},
		{"a < b", "a < b"},
		{"<i>O'Brien</i> & \"R&D\"", `O'Brien & "R&D"`},
	}
	for _, tt := range tests {
		if got := htmlsanitize.PlainText(tt.input); got != tt.want {
			t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsPlainText(t *testing.T) {
	if !htmlsanitize.IsPlainText("") {
		t.Error("expected empty string to be plain text")
	}
	if !htmlsanitize.IsPlainText("a < b") {
		t.Error("expected a lone angle bracket to be plain text")
	}
	if htmlsanitize.IsPlainText("<p>Hello</p>") {
		t.Error("expected string with tags to NOT be plain text")
	}
}
