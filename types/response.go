package types

// StatusResponse is the body of successful write operations.
type StatusResponse struct {
	Status string   `json:"status"`
	Salary *float64 `json:"salary,omitempty"`
}

// ErrorResponse carries a single human readable error.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists every field that failed validation.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}

const (
	StatusOK      = "ok"
	StatusSaved   = "saved"
	StatusDeleted = "deleted"
	StatusWiped   = "all user data wiped"
)
