package llm

import "context"

// Provider-facing role labels. Internal assistant messages are mapped to
// RoleModel before a transcript leaves the domain layer.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is a single role-tagged entry in the transcript handed to a chat
// provider.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Session is an open chat exchange seeded with a transcript.
type Session interface {
	// Send submits the message to answer for this turn and returns the
	// generated text. Failures are reported as *CallError so callers can
	// branch on the kind instead of matching error strings.
	Send(ctx context.Context, message string) (string, error)
}

// Capability is the minimal chat surface the conversation core depends on.
// Any concrete provider is adapted to this shape in the infrastructure
// layer.
type Capability interface {
	StartChat(transcript []Turn) Session
}
