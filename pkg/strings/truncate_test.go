package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world this is a long string", 15, "hello world ..."},
		{"whitespace collapsed", "hello \n\t world", 20, "hello world"},
		{"unicode truncation safe", "日本語テスト文字列", 6, "日本語..."},
		{"empty string", "", 10, ""},
		{"maxLen clamped", "hello", 2, "h..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestJoinNames(t *testing.T) {
	names := []string{"Http", "Https", "GLib", "Zlib", "OpenSSL"}

	tests := []struct {
		name     string
		names    []string
		maxLen   int
		expected string
	}{
		{"fits", names[:2], 20, "Http, Https"},
		{"empty", nil, 5, ""},
		{"counts the rest", names, 25, "Http, Https (+3 more)"},
		{"keeps as many as fit", names, 30, "Http, Https, GLib (+2 more)"},
		{"falls back to truncation", []string{"averyveryverylongunitname", "b"}, 12, "averyvery..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinNames(tt.names, tt.maxLen))
		})
	}
}
