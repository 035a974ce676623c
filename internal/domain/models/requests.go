package models

// Request bodies of the HTTP endpoints. Role values are not restricted: an
// unknown role is answered with the trader insight.

type WhaleAnalyzerRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required"`
	Role          Role   `json:"role" validate:"required"`
}

type NewsAnalystRequest struct {
	Role  Role   `json:"role" validate:"required"`
	Query string `json:"query,omitempty"`
}

type OrchestratorRequest struct {
	Message  string `json:"message" validate:"required"`
	UserRole Role   `json:"userRole" validate:"required"`
	Format   string `json:"format,omitempty" default:"markdown" validate:"oneof=markdown html"`

	// RequestID correlates the emitted query event with the HTTP request.
	RequestID string `json:"-"`
}
