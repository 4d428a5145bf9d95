package puzzle

import "strings"

// Limits on chain specifications.
const (
	MaxSteps          = 5
	MaxQuestionLength = 80
	MaxAnswerLength   = 20
	MinNodes          = 1
	MaxNodes          = 3
)

// Key types accepted in the keyType field.
const (
	KeyTypeSecret  = "secret"
	KeyTypeCluster = "cluster"
)

// DefaultCompletionMessage is shown at the end of a chain when the
// specification does not set one.
const DefaultCompletionMessage = "🎉 Puzzle Complete!"

// Step is one question and the answer that unlocks it.
type Step struct {
	Question string
	Answer   string
}

// Spec is a validated chain specification. Only Validate creates one.
type Spec struct {
	Steps             []Step
	NodeCount         int
	KeyType           string
	CompletionMessage string
}

// Last returns the index of the final step.
func (s *Spec) Last() int { return len(s.Steps) - 1 }

// Defaults fills fields a raw specification leaves out.
type Defaults struct {
	NodeCount         int
	CompletionMessage string
}

// StandardDefaults returns the built-in defaults.
func StandardDefaults() Defaults {
	return Defaults{NodeCount: MaxNodes, CompletionMessage: DefaultCompletionMessage}
}

// NormalizeAnswer returns the form of an answer used as a key seed.
// Building and solving must both go through it.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
