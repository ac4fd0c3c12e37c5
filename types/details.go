package types

// Detail strings returned to clients in error responses.
const (
	DetailInvalidBody    = "request body failed validation"
	DetailStorageFailure = "Database error"
	DetailNotFound       = "Record not found"
	DetailUnexpected     = "unexpected server error"
)
