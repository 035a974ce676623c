package http

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Error   string            `json:"error" example:"Missing walletAddress"`
	Details []ValidationError `json:"details,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"walletAddress"`
	Message string                 `json:"message,omitempty" example:"walletAddress is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// HealthResponse reports liveness and which upstreams run against real providers.
type HealthResponse struct {
	Status    string            `json:"status"`
	Providers map[string]string `json:"providers,omitempty"`
}
