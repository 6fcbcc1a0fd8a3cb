package dto

import "time"

// APIResponse is the envelope for every successful API payload.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-03-10T09:01:05.123Z"`
}

// NewAPIResponse wraps data in the standard envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}
