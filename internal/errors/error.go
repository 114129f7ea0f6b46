package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryNetwork  Category = "network"
	CategoryData     Category = "data"
	CategoryGenerate Category = "generate"
	CategoryCLI      Category = "cli"
)

// FacetError is a structured error with a registered code, suggestions,
// and documentation link.
type FacetError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (network, data, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *FacetError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *FacetError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *FacetError) WithDetail(d string) *FacetError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *FacetError) WithSuggestion(s string) *FacetError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *FacetError) Wrap(err error) *FacetError {
	e.Wrapped = err
	return e
}

// New creates a FacetError from a registered error code.
func New(code string) *FacetError {
	template, ok := registry[code]
	if !ok {
		return &FacetError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &FacetError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}
