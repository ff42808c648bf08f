package chat

import "sort"

const (
	// DefaultMaxTokens is the hard ceiling on system prompt + history +
	// reserved allowance for one call.
	DefaultMaxTokens = 30000

	// DefaultTargetTokens is a softer ceiling kept for future tuning. It is
	// carried through the truncation signature but only the max limit is
	// load-bearing today.
	DefaultTargetTokens = 25000

	// RecentMessageFloor is how many trailing messages are treated as
	// "recent" and fitted ahead of older history.
	RecentMessageFloor = 5

	// MaxReservedTokens bounds the allowance held back for the incoming
	// user message and the model's reply.
	MaxReservedTokens = 1000
)

// Truncator selects the subset of history that fits a token budget next to
// the context prompt.
type Truncator struct {
	counter Counter
}

// NewTruncator builds a truncator. A nil counter falls back to the
// process-wide default.
func NewTruncator(counter Counter) *Truncator {
	if counter == nil {
		counter = DefaultCounter()
	}
	return &Truncator{counter: counter}
}

// Truncate returns the kept history and the total token cost of the kept
// messages plus the context prompt. The input history is never mutated.
//
// A reserved allowance of min(MaxReservedTokens, available/4) is carved out
// of the budget before any history is fitted. The last RecentMessageFloor
// messages are fitted first; when they fit, older messages are prepended
// newest-to-oldest until one overflows (messages older than that are dropped
// even if individually small). When the recent set alone overflows, messages
// are accepted cheapest-first and the kept set is NOT returned in
// chronological order; callers depend on that output, so it stays.
//
// A single message costing more than the whole budget is excluded outright,
// never split mid-content.
func (t *Truncator) Truncate(history []Message, contextPrompt string, maxTokens, targetTokens int) ([]Message, int) {
	_ = targetTokens

	systemTokens := t.counter.Count(contextPrompt)
	if len(history) == 0 {
		return []Message{}, systemTokens
	}

	available := maxTokens - systemTokens

	reserved := available / 4
	if reserved < 0 {
		reserved = 0
	}
	if reserved > MaxReservedTokens {
		reserved = MaxReservedTokens
	}
	available -= reserved

	costs := make([]int, len(history))
	for i, msg := range history {
		costs[i] = t.counter.Count(CoerceContent(msg.Content))
	}

	recentStart := len(history) - RecentMessageFloor
	if recentStart < 0 {
		recentStart = 0
	}

	recentTotal := 0
	for _, cost := range costs[recentStart:] {
		recentTotal += cost
	}

	if recentTotal > available {
		return t.fitRecentByCost(history[recentStart:], costs[recentStart:], available, systemTokens)
	}

	// Recent fits: prepend older messages newest-to-oldest while they fit.
	remaining := available - recentTotal
	keepFrom := recentStart
	for i := recentStart - 1; i >= 0; i-- {
		if costs[i] > remaining {
			break
		}
		remaining -= costs[i]
		keepFrom = i
	}

	kept := make([]Message, len(history)-keepFrom)
	copy(kept, history[keepFrom:])
	return kept, (available - remaining) + systemTokens
}

// fitRecentByCost greedily accepts the cheapest recent messages until the
// budget is spent, ties broken by original position.
func (t *Truncator) fitRecentByCost(recent []Message, costs []int, available, systemTokens int) ([]Message, int) {
	order := make([]int, len(recent))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return costs[order[a]] < costs[order[b]]
	})

	kept := make([]Message, 0, len(recent))
	total := 0
	for _, i := range order {
		if total+costs[i] > available {
			break
		}
		total += costs[i]
		kept = append(kept, recent[i])
	}
	return kept, total + systemTokens
}
