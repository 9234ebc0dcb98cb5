package services

import (
	"github.com/nickh641/AIPromptMaster/internal/llm"
	"github.com/nickh641/AIPromptMaster/internal/models"
)

// BuildTurns rebuilds the ordered turn sequence for a completion call: the
// system instruction, the prior exchanges, then the pending user message.
//
// The walk over history (which must be in ascending id order) pairs each
// user-authored message with the immediately following message when that one
// is assistant-authored. A user message whose reply has not been recorded yet
// is emitted alone; assistant messages not reachable through this pairing
// (a leading reply, or two replies in a row) are dropped. The pending message
// is appended from the argument, never re-read from storage, so it appears
// exactly once even when it has already been persisted.
func BuildTurns(systemPrompt string, history []models.Message, pending string) []llm.Turn {
	turns := make([]llm.Turn, 0, len(history)+2)
	turns = append(turns, llm.Turn{Role: llm.RoleSystem, Content: systemPrompt})

	for i := 0; i < len(history); i++ {
		if !history[i].IsUser {
			continue
		}
		turns = append(turns, llm.Turn{Role: llm.RoleUser, Content: history[i].Content})
		if i+1 < len(history) && !history[i+1].IsUser {
			turns = append(turns, llm.Turn{Role: llm.RoleAssistant, Content: history[i+1].Content})
			i++
		}
	}

	return append(turns, llm.Turn{Role: llm.RoleUser, Content: pending})
}

// InitialTurns is the sequence used to seed a conversation before any user
// input: the system instruction alone.
func InitialTurns(systemPrompt string) []llm.Turn {
	return []llm.Turn{{Role: llm.RoleSystem, Content: systemPrompt}}
}
