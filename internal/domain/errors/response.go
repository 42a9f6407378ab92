package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "ALREADY_RATED"
	Details string `json:"details"` // Detailed error description
}

// Response is the envelope the error handler writes when a request fails.
// It matches the shape the response package uses for successful calls.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
