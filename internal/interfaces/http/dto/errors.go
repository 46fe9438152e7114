package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Auth error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeTokenInvalid = "TOKEN_INVALID"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "RATE_LIMITED"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes produced by the application services are listed explicitly so a
// new code has to be placed deliberately.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeRateLimited:  http.StatusTooManyRequests,

	// Lookups
	ErrCodeNotFound:      http.StatusNotFound,
	"PRODUCT_NOT_FOUND":  http.StatusNotFound,
	"CATEGORY_NOT_FOUND": http.StatusNotFound,
	"ORDER_NOT_FOUND":    http.StatusNotFound,
	"BANNER_NOT_FOUND":   http.StatusNotFound,
	"POST_NOT_FOUND":     http.StatusNotFound,
	"USER_NOT_FOUND":     http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,

	// Cart and checkout input
	"INVALID_SESSION":     http.StatusBadRequest,
	"EMPTY_ITEMS":         http.StatusBadRequest,
	"INVALID_QUANTITY":    http.StatusBadRequest,
	"PRODUCT_UNAVAILABLE": http.StatusUnprocessableEntity,

	// Domain state rules
	"INVALID_STATE":    http.StatusUnprocessableEntity,
	"INVALID_STATUS":   http.StatusUnprocessableEntity,
	"INVALID_PRICE":    http.StatusBadRequest,
	"INVALID_TOTAL":    http.StatusBadRequest,
	"INVALID_NAME":     http.StatusBadRequest,
	"INVALID_SLUG":     http.StatusBadRequest,
	"INVALID_TITLE":    http.StatusBadRequest,
	"INVALID_BODY":     http.StatusBadRequest,
	"INVALID_IMAGE":    http.StatusBadRequest,
	"INVALID_STOCK":    http.StatusBadRequest,
	"INVALID_MRP":      http.StatusBadRequest,
	"ALREADY_ACTIVE":   http.StatusConflict,
	"ALREADY_INACTIVE": http.StatusConflict,

	// Payments
	"PAYMENT_DISABLED":           http.StatusServiceUnavailable,
	"GATEWAY_ERROR":              http.StatusBadGateway,
	"PAYMENT_SIGNATURE_MISMATCH": http.StatusBadRequest,
	"PAYMENT_METHOD_MISMATCH":    http.StatusUnprocessableEntity,
	"PAYMENT_ON_CANCELLED":       http.StatusConflict,
	"ALREADY_PAID":               http.StatusConflict,

	// Authentication
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"USERNAME_TAKEN":      http.StatusConflict,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"INVALID_PASSWORD":    http.StatusBadRequest,
	"INVALID_USERNAME":    http.StatusBadRequest,
	"INVALID_EMAIL":       http.StatusBadRequest,
	"WEAK_PASSWORD":       http.StatusBadRequest,
	"TOKEN_ERROR":         http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 422 so new business rules fail closed rather
// than masquerading as server faults.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
