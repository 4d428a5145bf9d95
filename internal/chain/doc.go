// Package chain builds puzzle chains and resolves them one answer at a
// time.
//
// A chain is built backwards. The completion message is encrypted under
// a key derived from the last answer; the resulting link parameters are
// then encrypted under the key of the answer before it, and so on until
// the first step, whose parameters become the starting link. Every
// embedded message must fit under the encryption ceiling, so the Builder
// picks the smaller of the JSON and base64 encodings per step and fails
// with a SizeExceededError naming the step when neither fits.
//
// A Resolver holds exactly one step. Submit derives the key from the
// normalized answer, decrypts, and reports either the next link or the
// completion message. Wrong answers are indistinguishable from malformed
// ciphertexts: both give the same AnswerMismatchError.
package chain
