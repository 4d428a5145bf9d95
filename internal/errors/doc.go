// Package errors provides typed error values for riddlechain.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. Errors that
// carry details (which step, which parameter) are structs that unwrap to
// their sentinel, so errors.Is() and errors.As() both work.
//
// # Error Categories
//
//   - Build errors: ErrValidation (*ValidationError), ErrSizeExceeded
//     (*SizeExceededError), ErrInputNotFound, ErrOutputExists
//   - Resolution errors: ErrNoPuzzle, ErrIncompletePayload
//     (*IncompletePayloadError), ErrDecode (*DecodeError), ErrEmptyAnswer,
//     ErrAnswerMismatch (*AnswerMismatchError)
//
// Build errors are fatal to the build. Resolution errors are scoped to a
// single submission and never change the loaded payload.
//
// # Usage
//
//	result, err := workflows.Build(ctx, opts)
//	var verr *kerrors.ValidationError
//	if errors.As(err, &verr) {
//	    for _, p := range verr.Problems {
//	        fmt.Println(p)
//	    }
//	}
package errors
