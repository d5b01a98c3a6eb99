package models

// ErrorResponse is the body of every non-2xx reply. Status is left out of
// validation failures.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}
