package dto

import (
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidToken ErrorCode = "AUTH_001"
	ErrorCodeExpiredToken ErrorCode = "AUTH_002"
	ErrorCodeUnauthorized ErrorCode = "AUTH_003"
	ErrorCodeForbidden    ErrorCode = "AUTH_004"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Team matching errors
	ErrorCodeAlreadyTeamed       ErrorCode = "TEAM_001"
	ErrorCodeTargetAlreadyTeamed ErrorCode = "TEAM_002"
	ErrorCodeNoAttemptsLeft      ErrorCode = "TEAM_003"
	ErrorCodeSelectionClosed     ErrorCode = "TEAM_004"
	ErrorCodeCrossBatch          ErrorCode = "TEAM_005"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    ErrorCode   `json:"code" example:"TEAM_001"`
	Message string      `json:"message" example:"Student is already in a team"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-08-23T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}
