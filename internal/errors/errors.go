package errors

import "errors"

// Build errors indicate the chain could not be constructed.
var (
	// ErrValidation indicates the chain specification failed validation.
	ErrValidation = errors.New("chain specification is invalid")

	// ErrSizeExceeded indicates an encoded step no longer fits the plaintext ceiling.
	ErrSizeExceeded = errors.New("encoded step exceeds plaintext ceiling")

	// ErrInputNotFound indicates the chain specification file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrOutputExists indicates the output file exists and overwriting was not requested.
	ErrOutputExists = errors.New("output file already exists")

	// ErrInvalidSettings indicates the settings file holds unusable values.
	ErrInvalidSettings = errors.New("settings are invalid")
)

// Resolution errors are scoped to a single visit and never advance the chain.
var (
	// ErrNoPuzzle indicates the link carries no puzzle parameters at all.
	ErrNoPuzzle = errors.New("no active puzzle in link")

	// ErrIncompletePayload indicates only one of the s/q parameters is present.
	ErrIncompletePayload = errors.New("incomplete puzzle link")

	// ErrDecode indicates a puzzle parameter could not be decoded.
	ErrDecode = errors.New("invalid puzzle link")

	// ErrEmptyAnswer indicates an answer was submitted with no content.
	ErrEmptyAnswer = errors.New("please enter your answer")

	// ErrAnswerMismatch indicates the answer did not open the payload.
	ErrAnswerMismatch = errors.New("incorrect answer")
)

// History errors indicate issues reading the build history.
var (
	// ErrNoHistory indicates no build has been recorded yet.
	ErrNoHistory = errors.New("no build history found")

	// ErrInvalidDateFormat indicates a date filter that is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
