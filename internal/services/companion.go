package services

import (
	"context"
	"log"
	"strings"

	"companion-backend/internal/models"
)

// TextGenerator turns a prompt into model output. GeminiService is the
// production implementation.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// CompanionService relays chat messages to the model. A failed call is
// never returned to the caller; the persona's fallback text is used instead.
type CompanionService struct {
	persona   Persona
	generator TextGenerator
}

func NewCompanionService(persona Persona, generator TextGenerator) *CompanionService {
	return &CompanionService{
		persona:   persona,
		generator: generator,
	}
}

// Reply makes exactly one model call. No retries.
func (s *CompanionService) Reply(ctx context.Context, message string, history []models.Exchange) string {
	prompt := s.persona.Prompt(history, message)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("Error generating response: %v", err)
		return s.persona.Fallback()
	}

	reply := strings.TrimSpace(text)
	if reply == "" {
		log.Println("WARNING: model returned blank text. Using fallback.")
		return s.persona.Fallback()
	}

	return reply
}
