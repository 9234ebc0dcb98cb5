package utils

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates a new ErrorResponse instance.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
