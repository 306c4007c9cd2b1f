package logger

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "empty", input: "", maxLen: 100, want: ""},
		{name: "plain text untouched", input: "hello world", maxLen: 100, want: "hello world"},
		{name: "newlines kept", input: "line1\nline2", maxLen: 100, want: "line1\nline2"},
		{name: "control chars stripped", input: "abc\x00\x1bdef", maxLen: 100, want: "abcdef"},
		{name: "truncated with ellipsis", input: strings.Repeat("a", 10), maxLen: 5, want: "aaaaa..."},
		{name: "zero maxLen uses default", input: "short", maxLen: 0, want: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("SanitizeString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestSanitizeStringInvalidUTF8(t *testing.T) {
	t.Parallel()

	got := SanitizeString("ok\xff\xfe", 100)
	if strings.ContainsRune(got, '�') || strings.Contains(got, "\xff") {
		t.Errorf("SanitizeString left invalid bytes in %q", got)
	}
	if !strings.HasPrefix(got, "ok") {
		t.Errorf("SanitizeString dropped valid prefix: %q", got)
	}
}

func TestSanitizePath(t *testing.T) {
	t.Parallel()

	long := "/" + strings.Repeat("x", MaxPathLength+10)
	got := SanitizePath(long)
	if len(got) != MaxPathLength+3 {
		t.Errorf("SanitizePath length = %d, want %d", len(got), MaxPathLength+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("SanitizePath did not append ellipsis: %q", got[len(got)-10:])
	}
}

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	if got := SanitizeError(nil); got != "" {
		t.Errorf("SanitizeError(nil) = %q, want empty", got)
	}
	if got := SanitizeError(errors.New("boom\x00")); got != "boom" {
		t.Errorf("SanitizeError = %q, want %q", got, "boom")
	}
}

func TestSanitizeDebugContent(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("p", MaxDebugContentLength+1)
	got := SanitizeDebugContent(long)
	if len(got) != MaxDebugContentLength+3 {
		t.Errorf("SanitizeDebugContent length = %d, want %d", len(got), MaxDebugContentLength+3)
	}
}
