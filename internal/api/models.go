package api

// MessageRequest defines the payload for the concept message endpoint.
type MessageRequest struct {
	// Message is the topic the user wants explained, e.g. "directed graph".
	Message string `json:"message" validate:"required"`
}

// RootResponse is returned by the root endpoint.
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// Fixed bodies of the informational endpoints.
const (
	RootMessage   = "First Principles Backend API"
	HealthHealthy = "healthy"
)
