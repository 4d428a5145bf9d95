// Package codec maps step payloads to and from puzzle link parameters.
//
// A link carries four query parameters:
//
//	s    shares: query-escaped JSON, or URL-safe base64 of the same JSON
//	q    question, query-escaped
//	f    "1" on the final step, absent otherwise
//	b64  "1" when s is base64, absent otherwise
//
// Encode measures both forms of s and keeps base64 only when it is
// strictly shorter. Params keeps the escaped values as they appear in the
// link; its JSON form is the plaintext an earlier step decrypts to.
//
// Limits is the size guard: Fit picks an encoding whose embedded message
// fits the hard limit or reports both sizes in a SizeExceededError.
package codec
