package models

// Exchange is one prior user/assistant turn supplied by the client.
type Exchange struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string     `json:"message"`
	History []Exchange `json:"history"`
}

// ChatResponse is the reply from the companion.
type ChatResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)
