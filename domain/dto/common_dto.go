// domain/dto/common_dto.go
package dto

import "time"

// CommonResponse is the envelope wrapped around every API response body.
// Error is null on success and a short machine code on failure, in which
// case Data carries the human-readable description.
type CommonResponse struct {
	Error     *string     `json:"error"`
	Timestamp int64       `json:"timestamp"`
	Total     *int64      `json:"total,omitempty"`
	Offset    *int        `json:"offset,omitempty"`
	PerPage   *int        `json:"perPage,omitempty"`
	Data      interface{} `json:"data"`
}

// NewResponse wraps data in a success envelope.
func NewResponse(data interface{}) CommonResponse {
	return CommonResponse{
		Timestamp: time.Now().Unix(),
		Data:      data,
	}
}

// NewPageResponse wraps a page of data together with pagination metadata.
func NewPageResponse(data interface{}, total int64, offset, perPage int) CommonResponse {
	return CommonResponse{
		Timestamp: time.Now().Unix(),
		Total:     &total,
		Offset:    &offset,
		PerPage:   &perPage,
		Data:      data,
	}
}

// NewErrorResponse builds a failure envelope with a machine code and a
// descriptive message in the data slot.
func NewErrorResponse(code, description string) CommonResponse {
	return CommonResponse{
		Error:     &code,
		Timestamp: time.Now().Unix(),
		Data:      description,
	}
}

// MessageData is the generic {"message": "..."} acknowledgment payload.
type MessageData struct {
	Message string `json:"message"`
}
