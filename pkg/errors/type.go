package errors

// APIError represents an error response from the Zenwell backend.
type APIError struct {
	// StatusCode is the HTTP status the backend answered with.
	StatusCode int
	// Code is the machine-readable error code from the response body, if any.
	Code string
	// Message is the human-readable message from the response body.
	Message string
}

// apiErrorBody is the error envelope the backend uses for non-2xx responses.
type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
