package chat

import "capper-server/internal/domain/llm"

// Acknowledgment is the fixed assistant turn inserted after the context
// turn so the transcript satisfies the strict user/model alternation the
// chat API requires.
const Acknowledgment = "Okay, I understand my role and the context. How can I help?"

// Assemble renders the context prompt and the kept history into a
// role-alternating transcript: context (user), acknowledgment (model), then
// history in order. Messages with a missing role default to user; non-string
// content is coerced, never skipped. The current user message is not part of
// the transcript; it is sent separately as the turn to answer.
func Assemble(contextPrompt string, kept []Message) []llm.Turn {
	transcript := make([]llm.Turn, 0, len(kept)+2)
	transcript = append(transcript,
		llm.Turn{Role: llm.RoleUser, Text: contextPrompt},
		llm.Turn{Role: llm.RoleModel, Text: Acknowledgment},
	)
	for _, msg := range kept {
		role := llm.RoleUser
		if msg.Role == RoleAssistant || msg.Role == llm.RoleModel {
			role = llm.RoleModel
		}
		transcript = append(transcript, llm.Turn{Role: role, Text: CoerceContent(msg.Content)})
	}
	return transcript
}
