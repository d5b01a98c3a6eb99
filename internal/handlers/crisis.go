package handlers

import (
	"net/http"

	"companion-backend/internal/models"
)

// crisisResources returns a fresh copy on every call. Numbers are US only.
func crisisResources() models.CrisisResources {
	return models.CrisisResources{
		"emergency":        "911 (or your local emergency number)",
		"crisis_text_line": "Text HOME to 741741",
		"suicide_lifeline": "988 Suicide & Crisis Lifeline",
		"trevor_project":   "1-866-488-7386 (LGBTQ youth)",
		"veterans_crisis":  "1-800-273-8255, Press 1",
	}
}

func CrisisResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, crisisResources())
}
