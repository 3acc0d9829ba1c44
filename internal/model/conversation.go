package model

// ConversationRequest is the body sent to the Tavus conversations endpoint.
type ConversationRequest struct {
	ReplicaID string `json:"replica_id"`
	PersonaID string `json:"persona_id"`
}

// Conversation is the subset of the Tavus conversation object the proxy reads.
type Conversation struct {
	ConversationID  string `json:"conversation_id,omitempty"`
	ConversationURL string `json:"conversation_url"`
	Status          string `json:"status,omitempty"`
}

// SessionResponse is returned to the caller on success.
type SessionResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is returned to the caller on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
