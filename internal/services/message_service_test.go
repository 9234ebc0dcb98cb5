package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendAndListMessagesOrdering(t *testing.T) {
	setupTestDB()

	for i := 1; i <= 5; i++ {
		_, err := AppendMessage(1, fmt.Sprintf("msg %d", i), i%2 == 1, "2024-01-01T00:00:00Z")
		assert.NoError(t, err)
	}

	messages, err := ListMessages(1)
	assert.NoError(t, err)
	assert.Len(t, messages, 5)

	for i, m := range messages {
		assert.Equal(t, fmt.Sprintf("msg %d", i+1), m.Content)
		if i > 0 {
			assert.Greater(t, m.ID, messages[i-1].ID)
		}
	}
}

func TestAppendMessageRoundTrip(t *testing.T) {
	setupTestDB()

	appended, err := AppendMessage(7, "hello there", true, "2024-01-01T12:00:00Z")
	assert.NoError(t, err)
	assert.NotZero(t, appended.ID)

	messages, err := ListMessages(7)
	assert.NoError(t, err)
	assert.Len(t, messages, 1)

	last := messages[len(messages)-1]
	assert.Equal(t, "hello there", last.Content)
	assert.True(t, last.IsUser)
	assert.Equal(t, "2024-01-01T12:00:00Z", last.Timestamp)
}

func TestListMessagesScopedToPrompt(t *testing.T) {
	setupTestDB()

	_, err := AppendMessage(1, "for one", true, "ts")
	assert.NoError(t, err)
	_, err = AppendMessage(2, "for two", true, "ts")
	assert.NoError(t, err)

	messages, err := ListMessages(1)
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, "for one", messages[0].Content)
}

func TestListMessagesUnknownPrompt(t *testing.T) {
	setupTestDB()

	messages, err := ListMessages(999)
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestClearMessages(t *testing.T) {
	setupTestDB()

	_, err := AppendMessage(1, "a", true, "ts")
	assert.NoError(t, err)
	_, err = AppendMessage(1, "b", false, "ts")
	assert.NoError(t, err)
	_, err = AppendMessage(2, "keep", true, "ts")
	assert.NoError(t, err)

	assert.NoError(t, ClearMessages(1))

	messages, err := ListMessages(1)
	assert.NoError(t, err)
	assert.Empty(t, messages)

	// Other prompts are untouched
	messages, err = ListMessages(2)
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestClearMessagesEmptyIsNoOp(t *testing.T) {
	setupTestDB()

	assert.NoError(t, ClearMessages(42))
}
