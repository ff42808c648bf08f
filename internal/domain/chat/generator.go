package chat

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"capper-server/internal/domain/llm"
	"capper-server/internal/infrastructure/metrics"
)

// Fallback replies. Each branch has distinct wording so callers and tests
// can tell which path produced it; all but the configuration error point the
// user at support.
const (
	MsgNotConfigured  = "Error: AI Service not configured correctly."
	MsgTokenLimit     = "Sorry, this conversation has grown too long for me to process. Please start a new conversation, or contact support if you need more help."
	MsgEmptyResponse  = "Sorry, I received an empty response from the AI. Please try again, or contact support if the problem persists."
	MsgGenericFailure = "Sorry, I encountered an internal error while generating a response. Please try again later, or contact support."
)

// GeneratorConfig carries the injected prompt template and token budget
// constants. Zero values fall back to the package defaults.
type GeneratorConfig struct {
	Persona      string
	MaxTokens    int
	TargetTokens int
}

// Generator orchestrates token counting, history truncation, transcript
// assembly, and the provider call for a single conversation turn. It holds
// no per-conversation state and performs no persistence, so concurrent
// turns can share one instance. Callers are responsible for serializing
// turns within a single conversation.
type Generator struct {
	capability llm.Capability
	counter    Counter
	truncator  *Truncator
	persona    string
	maxTokens  int
	target     int
	log        zerolog.Logger
}

// NewGenerator wires the generator. A nil capability is valid and marks the
// generator as unconfigured: every call then returns the configuration
// error message without touching the provider.
func NewGenerator(capability llm.Capability, counter Counter, cfg GeneratorConfig, log zerolog.Logger) *Generator {
	if counter == nil {
		counter = DefaultCounter()
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	target := cfg.TargetTokens
	if target <= 0 {
		target = DefaultTargetTokens
	}
	return &Generator{
		capability: capability,
		counter:    counter,
		truncator:  NewTruncator(counter),
		persona:    cfg.Persona,
		maxTokens:  maxTokens,
		target:     target,
		log:        log.With().Str("component", "chat-generator").Logger(),
	}
}

// Generate produces the assistant reply for one turn. It never returns an
// error: every failure path maps to one of the fallback messages, and full
// detail is logged for operators instead of propagated.
func (g *Generator) Generate(ctx context.Context, user UserInfo, history []Message, userMessage string, knowledge KnowledgeSnapshot) string {
	if g.capability == nil {
		g.log.Error().Uint("user_id", user.ID).Msg("llm capability not configured")
		metrics.ChatFallbacksTotal.WithLabelValues("not_configured").Inc()
		return MsgNotConfigured
	}

	contextPrompt := BuildContextPrompt(g.persona, user, knowledge)

	kept, historyTokens := g.truncator.Truncate(history, contextPrompt, g.maxTokens, g.target)
	if dropped := len(history) - len(kept); dropped > 0 {
		g.log.Warn().
			Int("history_len", len(history)).
			Int("kept", len(kept)).
			Int("history_tokens", historyTokens).
			Msg("history truncated to fit token budget")
		metrics.TruncatedMessagesTotal.Add(float64(dropped))
	}

	// Pre-call budget check: if the kept context plus the new message
	// already meets the ceiling, skip the call entirely.
	if historyTokens+g.counter.Count(userMessage) >= g.maxTokens {
		g.log.Warn().
			Uint("user_id", user.ID).
			Int("history_tokens", historyTokens).
			Msg("token budget exceeded before llm call")
		metrics.ChatFallbacksTotal.WithLabelValues("token_limit").Inc()
		return MsgTokenLimit
	}

	transcript := Assemble(contextPrompt, kept)

	start := time.Now()
	session := g.capability.StartChat(transcript)
	text, err := session.Send(ctx, userMessage)
	metrics.LLMCallDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		switch llm.KindOf(err) {
		case llm.KindOverflow:
			// The provider's real tokenizer counted more than our local
			// estimate. Acceptable, not a bug, but worth seeing in logs.
			g.log.Warn().Err(err).Uint("user_id", user.ID).Msg("provider rejected context size")
			metrics.ChatFallbacksTotal.WithLabelValues("token_limit").Inc()
			return MsgTokenLimit
		default:
			g.log.Error().Err(err).Uint("user_id", user.ID).Msg("llm call failed")
			metrics.ChatFallbacksTotal.WithLabelValues("generic").Inc()
			return MsgGenericFailure
		}
	}

	if strings.TrimSpace(text) == "" {
		g.log.Warn().Uint("user_id", user.ID).Msg("provider returned empty response text")
		metrics.ChatFallbacksTotal.WithLabelValues("empty").Inc()
		return MsgEmptyResponse
	}

	return text
}
