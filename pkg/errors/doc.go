// Package errors provides structured error types for better observability
// and programmatic error handling across the calculators and the API server.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeValidation,
//	    "request validation failed",
//	    verr,
//	    map[string]any{
//	        "errors": verr.Errors,
//	    },
//	)
//
// The API server maps each ErrorCode to an HTTP status code, so handlers can
// return any error and have it rendered consistently.
package errors
