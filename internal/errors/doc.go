// Package errors provides structured, actionable error messages for the
// facet CLI.
//
// Each error has a registered code (e.g. "E001") that maps to a short
// message, a default detail, and a documentation URL. Call sites attach
// specifics:
//
//	err := errors.New("E001").
//	    WithDetail("Could not connect to dump host: " + cause.Error()).
//	    WithSuggestion("Check your internet connection")
//
// The element-construction packages never use this package: the adapter
// performs no validation and propagates runtime results unchanged.
package errors
