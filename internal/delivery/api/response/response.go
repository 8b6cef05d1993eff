package response

import (
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Meta       *MetaInfo   `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// Pagination describes a page of a larger result set
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID  string `json:"request_id"`           // Request tracking ID
	Enrichment string `json:"enrichment,omitempty"` // Reverse geocode outcome of a location update
}

// Option customizes a success response
type Option func(*SuccessResponse)

// WithPagination attaches pagination info
func WithPagination(p Pagination) Option {
	return func(r *SuccessResponse) {
		r.Pagination = &p
	}
}

// WithEnrichment records the enrichment outcome in meta
func WithEnrichment(enrichment string) Option {
	return func(r *SuccessResponse) {
		r.Meta.Enrichment = enrichment
	}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, opts ...Option) error {
	resp := &SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	}
	for _, opt := range opts {
		opt(resp)
	}

	return c.JSON(statusCode, resp)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
