package puzzle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PolarWolf314/riddlechain/internal/blindfold"
	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
)

// Validate checks raw against every rule and applies defaults. All
// problems are collected; on failure the returned error is a
// *errors.ValidationError and no Spec is returned.
func Validate(raw Raw, defaults Defaults) (*Spec, error) {
	var problems []kerrors.Problem
	add := func(step int, field, format string, args ...any) {
		problems = append(problems, kerrors.Problem{Step: step, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	switch {
	case raw.Steps == nil:
		add(0, "steps", "a steps array is required")
	case len(raw.Steps) == 0:
		add(0, "steps", "at least one step is required")
	case len(raw.Steps) > MaxSteps:
		add(0, "steps", "at most %d steps are allowed, got %d", MaxSteps, len(raw.Steps))
	}

	steps := make([]Step, len(raw.Steps))
	for i, rs := range raw.Steps {
		n := i + 1

		switch {
		case rs.Question == nil || *rs.Question == "":
			add(n, "question", "is required")
		case utf8.RuneCountInString(*rs.Question) > MaxQuestionLength:
			add(n, "question", "too long (%d characters, max %d)", utf8.RuneCountInString(*rs.Question), MaxQuestionLength)
		default:
			steps[i].Question = *rs.Question
		}

		switch {
		case rs.Answer == nil || strings.TrimSpace(*rs.Answer) == "":
			add(n, "answer", "is required")
		case utf8.RuneCountInString(*rs.Answer) > MaxAnswerLength:
			add(n, "answer", "too long (%d characters, max %d)", utf8.RuneCountInString(*rs.Answer), MaxAnswerLength)
		default:
			steps[i].Answer = *rs.Answer
		}
	}

	nodeCount := defaults.NodeCount
	if raw.NodeCount != nil {
		nodeCount = *raw.NodeCount
	}
	if nodeCount < MinNodes || nodeCount > MaxNodes {
		add(0, "nodeCount", "must be between %d and %d, got %d", MinNodes, MaxNodes, nodeCount)
	}

	keyType := KeyTypeSecret
	if raw.KeyType != nil {
		keyType = *raw.KeyType
	}
	switch keyType {
	case KeyTypeSecret:
	case KeyTypeCluster:
		add(0, "keyType", "%q keys are random and cannot be re-derived from an answer; only %q is supported", KeyTypeCluster, KeyTypeSecret)
	default:
		add(0, "keyType", "unknown key type %q; only %q is supported", keyType, KeyTypeSecret)
	}

	completion := defaults.CompletionMessage
	if raw.CompletionMessage != nil && *raw.CompletionMessage != "" {
		completion = *raw.CompletionMessage
	}
	if len(completion) > blindfold.MaxPlaintextSize {
		add(0, "completionMessage", "too long (%d bytes, max %d)", len(completion), blindfold.MaxPlaintextSize)
	}

	if len(problems) > 0 {
		return nil, &kerrors.ValidationError{Problems: problems}
	}

	return &Spec{
		Steps:             steps,
		NodeCount:         nodeCount,
		KeyType:           keyType,
		CompletionMessage: completion,
	}, nil
}
