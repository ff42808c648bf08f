package logger_test

import (
	"strings"
	"testing"

	"capper-server/internal/infrastructure/logger"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "email redacted",
			input:    "reach me at jamie@example.com please",
			contains: []string{"[EMAIL:"},
			excludes: []string{"jamie@example.com"},
		},
		{
			name:     "phone redacted",
			input:    "call 555-123-4567 tomorrow",
			contains: []string{"[PHONE:"},
			excludes: []string{"555-123-4567"},
		},
		{
			name:     "plain text untouched",
			input:    "how do referrals work?",
			contains: []string{"how do referrals work?"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logger.SanitizeText(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Fatalf("sanitized %q missing %q", got, want)
				}
			}
			for _, banned := range tt.excludes {
				if strings.Contains(got, banned) {
					t.Fatalf("sanitized %q still contains %q", got, banned)
				}
			}
		})
	}
}

func TestSanitizeText_Deterministic(t *testing.T) {
	a := logger.SanitizeText("jamie@example.com")
	b := logger.SanitizeText("jamie@example.com")
	if a != b {
		t.Fatalf("same input sanitized differently: %q vs %q", a, b)
	}
}
