package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "PRODUCT_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// InfoOf returns the error block rendered for an AppError
func InfoOf(appErr AppError) *ErrorInfo {
	return &ErrorInfo{
		Code:    appErr.ErrorCode(),
		Details: appErr.Details(),
	}
}
