package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	UserID string `json:"user_id" binding:"required"` // unique user identifier
	Text   string `json:"text" binding:"required"`    // user's message
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Reply string `json:"reply"`
}
