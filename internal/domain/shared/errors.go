package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists  = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput   = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized   = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden      = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState   = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrEmptyCart      = NewDomainError("EMPTY_CART", "Cart is empty")
	ErrPaymentFailure = NewDomainError("PAYMENT_FAILURE", "Payment could not be processed")
)

// ValidationErrors reports per-field presence failures from the checkout form.
// The map is keyed by the form field name so the client can render each error
// next to the offending input.
type ValidationErrors struct {
	Fields map[string]string `json:"fields"`
}

// Error implements the error interface
func (e *ValidationErrors) Error() string {
	return "validation failed"
}

// NewValidationErrors creates an empty field-error collection
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: make(map[string]string)}
}

// Add records an error message for a field
func (e *ValidationErrors) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors reports whether any field failed validation
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Fields) > 0
}
