package chat

import (
	"sync"
	"unicode/utf8"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// fallbackCharsPerToken approximates ~4 characters per token when no
// tokenizer is available. The estimate may be off by a bounded factor,
// which the budget's reserved allowance absorbs.
const fallbackCharsPerToken = 4

// Counter maps text to a non-negative token count.
type Counter interface {
	Count(text string) int
}

// TiktokenCounter counts tokens with the cl100k_base encoding. If the
// encoding cannot be loaded the counter is demoted once, at construction,
// to the character approximation for the rest of the process lifetime.
type TiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter loads the encoding. A load failure is not an error;
// the returned counter simply runs in approximation mode.
func NewTiktokenCounter() *TiktokenCounter {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return &TiktokenCounter{}
	}
	return &TiktokenCounter{enc: enc}
}

// Count returns the token count for text. Empty input counts as zero.
func (c *TiktokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	if c.enc == nil {
		return utf8.RuneCountInString(text) / fallbackCharsPerToken
	}
	return len(c.enc.Encode(text, nil, nil))
}

var (
	defaultCounter     Counter
	defaultCounterOnce sync.Once
)

// DefaultCounter returns the process-wide counter. The tokenizer is
// initialized on first use and read-only afterward, so concurrent turns can
// share it without locking.
func DefaultCounter() Counter {
	defaultCounterOnce.Do(func() {
		defaultCounter = NewTiktokenCounter()
	})
	return defaultCounter
}
