package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
)

// Chat messages may carry contact details typed by users, so any log line
// that echoes message text goes through SanitizeText first. Matches are
// replaced with a short content hash to keep log lines correlatable
// without storing the raw value.
var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)
)

// SanitizeText redacts email addresses and phone numbers from text bound
// for logs.
func SanitizeText(text string) string {
	result := emailPattern.ReplaceAllStringFunc(text, func(match string) string {
		return fmt.Sprintf("[EMAIL:%s]", shortHash(match))
	})
	result = phonePattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("[PHONE:%s]", shortHash(match))
	})
	return result
}

func shortHash(data string) string {
	h := sha256.Sum256([]byte(data))
	return hex.EncodeToString(h[:])[:8]
}
