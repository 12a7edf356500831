// Package validator checks calculation request fields against numeric
// constraints before any formula runs.
//
// # Overview
//
// Each calculator declares one Rule per input field. A rule names the field,
// optionally supplies a default for a missing value, and lists Bounds the
// value must satisfy:
//
//	values, err := validator.Validate(body,
//	    validator.Positive("power_kw"),
//	    validator.Positive("voltage_v"),
//	    validator.Field("power_factor", validator.GreaterThan(0), validator.AtMost(1)).
//	        WithDefault(0.8),
//	)
//
// # Error Reporting
//
// Validation never stops at the first problem. Every rule is evaluated and
// every violation is collected into a ValidationError:
//
//	power_kw must be > 0, got -3
//	voltage_v is required
//	power_factor must be <= 1, got 1.2
//
// The returned error is a *errors.StructuredError with code
// VALIDATION_FAILED so the API server can render it as a 422 response.
// Use errors.As to reach the underlying *ValidationError.
//
// # Value Handling
//
//   - Missing or null fields use the rule default when present, otherwise fail "required"
//   - Strings, booleans, arrays and objects fail "type"
//   - NaN and infinities fail "finite" (YAML bodies can express them)
//   - Integers decoded from YAML are accepted as numbers
//
// # Results
//
// CheckResult guards a computed value: finite inputs can still overflow to
// ±Inf or underflow to NaN, which JSON cannot carry. Such results fail with
// code RESULT_OUT_OF_RANGE (also rendered as 422).
package validator
