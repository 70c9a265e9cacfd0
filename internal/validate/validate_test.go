package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUUID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"canonical lowercase", "3f2504e0-4f89-41d3-9a0c-0305e82c3301", true},
		{"canonical uppercase", "3F2504E0-4F89-41D3-9A0C-0305E82C3301", true},
		{"missing hyphens", "3f2504e04f8941d39a0c0305e82c3301", false},
		{"wrong segment length", "3f2504e0-4f89-41d3-9a0c-0305e82c330", false},
		{"extra segment", "3f2504e0-4f89-41d3-9a0c-0305e82c3301-ab", false},
		{"non-hex character", "3g2504e0-4f89-41d3-9a0c-0305e82c3301", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUUID(tt.in))
		})
	}
}

func TestIsInviteToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"min length 16", strings.Repeat("a", 16), true},
		{"max length 64", strings.Repeat("f", 64), true},
		{"length 15 rejected", strings.Repeat("a", 15), false},
		{"length 65 rejected", strings.Repeat("a", 65), false},
		{"mixed case hex", "AbCdEf0123456789", true},
		{"digits only", strings.Repeat("0", 32), true},
		{"non-hex character", strings.Repeat("a", 15) + "g", false},
		{"hyphenated", "abcdef01-23456789", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInviteToken(tt.in))
		})
	}
}

func TestClampString(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		maxLen int
		want   string
	}{
		{"trims whitespace", "  hello  ", 100, "hello"},
		{"truncates", "hello world", 5, "hello"},
		{"trim then truncate", "  hello world  ", 5, "hello"},
		{"non-string int", 42, 10, ""},
		{"nil", nil, 10, ""},
		{"bool", true, 10, ""},
		{"exact length kept", "hello", 5, "hello"},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampString(tt.in, tt.maxLen))
		})
	}
}

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"http", "http://example.com", true},
		{"https with path", "https://example.com/a/b?c=d", true},
		{"ftp scheme", "ftp://example.com", false},
		{"javascript scheme", "javascript:alert(1)", false},
		{"no scheme", "example.com", false},
		{"scheme only", "https://", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHTTPURL(tt.in))
		})
	}
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"simple", "a@example.com", true},
		{"plus tag", "a+tag@example.co.uk", true},
		{"no at", "example.com", false},
		{"no domain dot", "a@example", false},
		{"missing local part", "@example.com", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.in))
		})
	}
}
