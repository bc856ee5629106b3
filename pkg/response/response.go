package response

// ErrorBody is the body of every failed request
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessBody acknowledges an operation that returns no record
type SuccessBody struct {
	Success bool `json:"success"`
}

// StatusBody is returned by the health check
type StatusBody struct {
	Status string `json:"status"`
}

// Error wraps an error message
func Error(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

// Success returns {"success": true}
func Success() SuccessBody {
	return SuccessBody{Success: true}
}
