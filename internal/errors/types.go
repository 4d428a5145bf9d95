package errors

import (
	"fmt"
	"strings"
)

// Problem is one failed check in a chain specification.
type Problem struct {
	// Step is the 1-based step number, or 0 for chain-level fields.
	Step    int
	Field   string
	Message string
}

func (p Problem) String() string {
	if p.Step == 0 {
		return fmt.Sprintf("%s: %s", p.Field, p.Message)
	}
	return fmt.Sprintf("step %d: %s: %s", p.Step, p.Field, p.Message)
}

// ValidationError reports every problem found in a chain specification.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(lines, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// SizeExceededError reports a step whose embedded message fits in neither encoding.
type SizeExceededError struct {
	Step       int
	JSONSize   int
	Base64Size int
	Limit      int
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("step %d encrypted data too large: %d bytes as JSON, %d bytes as base64, limit %d; try fewer nodes or shorter questions",
		e.Step, e.JSONSize, e.Base64Size, e.Limit)
}

func (e *SizeExceededError) Unwrap() error { return ErrSizeExceeded }

// DecodeError reports a puzzle parameter that could not be decoded.
// Raw holds the parameter as it appeared in the link.
type DecodeError struct {
	Param string
	Raw   string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %v", ErrDecode, e.Param, e.Cause)
}

// Is lets callers match both ErrDecode and the underlying cause.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func (e *DecodeError) Unwrap() error { return e.Cause }

// IncompletePayloadError reports a link carrying only one of s and q.
type IncompletePayloadError struct {
	Missing string
}

func (e *IncompletePayloadError) Error() string {
	return fmt.Sprintf("%s: missing %q parameter", ErrIncompletePayload, e.Missing)
}

func (e *IncompletePayloadError) Unwrap() error { return ErrIncompletePayload }

// AnswerMismatchError is returned for every failed decryption. It never
// records why decryption failed.
type AnswerMismatchError struct{}

func (e *AnswerMismatchError) Error() string { return "Incorrect answer! Try again." }

func (e *AnswerMismatchError) Unwrap() error { return ErrAnswerMismatch }
