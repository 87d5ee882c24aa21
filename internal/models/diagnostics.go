package models

import "fmt"

// ValidationResult is the outcome of structural validation of a legacy
// dictionary. Errors are fatal and reject the conversion; warnings are
// recoverable and surfaced to the caller.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// AddError records a fatal error and marks the result invalid.
func (v *ValidationResult) AddError(format string, args ...interface{}) {
	v.IsValid = false
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// AddWarning records a non-fatal warning.
func (v *ValidationResult) AddWarning(format string, args ...interface{}) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

// ConversionIssue is a recoverable problem encountered while converting
// legacy data: a field that failed to parse and was replaced by its
// deterministic fallback, or a validator warning. Issues never abort a
// conversion; they are collected so a host application can report
// "sequence loaded with N recoverable issues".
type ConversionIssue struct {
	Beat   int    `json:"beat"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func (i ConversionIssue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("beat %d: %s", i.Beat, i.Reason)
	}
	return fmt.Sprintf("beat %d: %s: %s", i.Beat, i.Field, i.Reason)
}
