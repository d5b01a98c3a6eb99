package services

import (
	"strings"

	"companion-backend/internal/models"
)

// RecentExchanges returns the last n exchanges of history, oldest first.
// The result never shares a backing array with history.
func RecentExchanges(history []models.Exchange, n int) []models.Exchange {
	if n <= 0 || len(history) == 0 {
		return []models.Exchange{}
	}
	if len(history) > n {
		history = history[len(history)-n:]
	}
	window := make([]models.Exchange, len(history))
	copy(window, history)
	return window
}

func buildCompanionPrompt(preamble string, window []models.Exchange, message string) string {
	var b strings.Builder

	b.WriteString(preamble)
	b.WriteString("\n\nConversation History:\n")

	for _, ex := range window {
		b.WriteString("User: ")
		b.WriteString(ex.User)
		b.WriteString("\n")
		b.WriteString("Assistant: ")
		b.WriteString(ex.Assistant)
		b.WriteString("\n")
	}

	b.WriteString("\nCurrent User Message: ")
	b.WriteString(message)

	return b.String()
}
