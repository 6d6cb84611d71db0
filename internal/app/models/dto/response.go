package dto

import "time"

// APIResponse is the standard envelope for successful API responses.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-08-23T12:01:05.123Z"`
}

// NewAPIResponse creates a success envelope around data.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}
