package core

// ResponseBase is the envelope every handler replies with
type ResponseBase[T any] struct {
	Status  string `json:"status"`
	Content T      `json:"content"`
	Message string `json:"message,omitempty"`
}
