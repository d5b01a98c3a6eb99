package services

import (
	"github.com/google/generative-ai-go/genai"

	"companion-backend/internal/models"
)

const companionSystemPrompt = `You are a compassionate, empathetic mental health companion. Your role is to:

1. Provide supportive, non-judgmental listening
2. Offer evidence-based coping strategies and mindfulness techniques
3. Help users identify and challenge negative thought patterns
4. Suggest relaxation and self-care practices
5. Provide psychoeducation about common mental health concerns

IMPORTANT GUIDELINES:
- Always maintain a warm, caring tone
- Never provide medical diagnoses or replace professional therapy
- Encourage seeking professional help when appropriate
- Focus on practical, actionable advice
- Validate feelings while promoting healthy coping mechanisms
- Avoid making promises of cures or guarantees
- Be culturally sensitive and inclusive

If a user expresses immediate crisis or suicidal thoughts, gently encourage them to contact emergency services or crisis hotlines.

Remember: You are a supportive companion, not a replacement for professional mental healthcare.`

// FallbackReply is returned to the user whenever the model call fails.
const FallbackReply = "I apologize, but I'm having trouble responding right now. Please try again in a moment. Remember, if you're in crisis, please contact a mental health professional or emergency services."

// HistoryWindow is how many trailing exchanges are kept as context.
const HistoryWindow = 6

// DefaultModel is used when GEMINI_MODEL is not set.
const DefaultModel = "gemini-2.5-flash"

var companionHarmCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

// Persona holds everything that shapes a companion reply. It is built once
// at startup and only read afterwards; accessors hand out copies.
type Persona struct {
	systemPrompt string
	model        string
	threshold    genai.HarmBlockThreshold
	window       int
	fallback     string
}

// NewPersona returns the mental health companion persona for the given model.
func NewPersona(model string) Persona {
	if model == "" {
		model = DefaultModel
	}
	return Persona{
		systemPrompt: companionSystemPrompt,
		model:        model,
		threshold:    genai.HarmBlockMediumAndAbove,
		window:       HistoryWindow,
		fallback:     FallbackReply,
	}
}

func (p Persona) SystemPrompt() string { return p.systemPrompt }
func (p Persona) Model() string { return p.model }
func (p Persona) HistoryWindow() int { return p.window }
func (p Persona) Fallback() string { return p.fallback }

// SafetySettings builds a fresh slice on every call so the model can't
// share state with the persona.
func (p Persona) SafetySettings() []*genai.SafetySetting {
	settings := make([]*genai.SafetySetting, 0, len(companionHarmCategories))
	for _, category := range companionHarmCategories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: p.threshold,
		})
	}
	return settings
}

// Prompt composes the full model input for a new message.
func (p Persona) Prompt(history []models.Exchange, message string) string {
	return buildCompanionPrompt(p.systemPrompt, RecentExchanges(history, p.window), message)
}
