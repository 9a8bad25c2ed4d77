package helpers

// Request/Response DTOs
type InvokeRequest struct {
	Function string   `json:"function" binding:"required"`
	Args     []string `json:"args"`
}

type InvokeResponse struct {
	Function string `json:"function"`
	Payload  any    `json:"payload"`
}
