package chain

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/riddlechain/internal/blindfold"
	"github.com/PolarWolf314/riddlechain/internal/codec"
	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
	"github.com/PolarWolf314/riddlechain/internal/puzzle"
)

func newSpec(nodes int, completion string, qa ...string) *puzzle.Spec {
	spec := &puzzle.Spec{NodeCount: nodes, KeyType: puzzle.KeyTypeSecret, CompletionMessage: completion}
	for i := 0; i+1 < len(qa); i += 2 {
		spec.Steps = append(spec.Steps, puzzle.Step{Question: qa[i], Answer: qa[i+1]})
	}
	return spec
}

func build(t *testing.T, spec *puzzle.Spec) *Result {
	t.Helper()
	b, err := NewBuilder(BuilderOptions{})
	require.NoError(t, err)
	res, err := b.Build(context.Background(), spec)
	require.NoError(t, err)
	return res
}

func TestTwoStepChainResolves(t *testing.T) {
	res := build(t, newSpec(1, "Done", "2+2?", "four", "color?", "purple"))

	require.True(t, strings.HasPrefix(res.StartingURL, "/puzzle?s="))
	require.Equal(t, "2+2?", res.StartingQuestion)
	require.Len(t, res.Reports, 2)

	r, err := Open(res.StartingURL, "")
	require.NoError(t, err)
	require.Equal(t, "2+2?", r.Question())
	require.False(t, r.IsFinal())
	require.Equal(t, StateAwaitingAnswer, r.State())

	out, err := r.Submit(context.Background(), "four")
	require.NoError(t, err)
	require.Equal(t, StateIntermediate, out.State)
	require.Equal(t, "color?", out.NextQuestion)
	require.True(t, strings.HasPrefix(out.NextURL, "/puzzle?s="))

	require.NoError(t, r.Continue())
	require.Equal(t, "color?", r.Question())
	require.True(t, r.IsFinal())

	out, err = r.Submit(context.Background(), "purple")
	require.NoError(t, err)
	require.Equal(t, StateTerminal, out.State)
	require.Equal(t, "Done", out.Message)
}

func TestEveryNodeCountResolves(t *testing.T) {
	for nodes := puzzle.MinNodes; nodes <= puzzle.MaxNodes; nodes++ {
		res := build(t, newSpec(nodes, puzzle.DefaultCompletionMessage,
			"first?", "one", "second?", "two", "third?", "three"))

		r, err := Open(res.StartingURL, "")
		require.NoError(t, err)
		require.Len(t, r.Payload().Shares.Values(), nodes)

		for _, answer := range []string{"one", "two"} {
			out, err := r.Submit(context.Background(), answer)
			require.NoError(t, err, "nodes=%d answer=%s", nodes, answer)
			require.Equal(t, StateIntermediate, out.State)
			require.NoError(t, r.Continue())
		}

		out, err := r.Submit(context.Background(), "three")
		require.NoError(t, err)
		require.Equal(t, StateTerminal, out.State)
		require.Equal(t, puzzle.DefaultCompletionMessage, out.Message)
	}
}

func TestAnswersAreNormalized(t *testing.T) {
	res := build(t, newSpec(2, "ok", "name?", "  Alice "))

	r, err := Open(res.StartingURL, "")
	require.NoError(t, err)
	out, err := r.Submit(context.Background(), "ALICE")
	require.NoError(t, err)
	require.Equal(t, "ok", out.Message)
}

func TestWrongAnswerIsOpaqueAndRetryable(t *testing.T) {
	res := build(t, newSpec(3, "Done", "2+2?", "four", "color?", "purple"))

	r, err := Open(res.StartingURL, "")
	require.NoError(t, err)
	before := r.Payload()

	out, err := r.Submit(context.Background(), "five")
	var mismatch *kerrors.AnswerMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.ErrorIs(t, err, kerrors.ErrAnswerMismatch)
	require.Equal(t, "Incorrect answer! Try again.", err.Error())
	require.Equal(t, StateFailed, out.State)
	require.Equal(t, StateFailed, r.State())
	require.Equal(t, before, r.Payload())

	out, err = r.Submit(context.Background(), "four")
	require.NoError(t, err)
	require.Equal(t, StateIntermediate, out.State)
}

func TestLaterAnswerCannotSkipAhead(t *testing.T) {
	res := build(t, newSpec(1, "Done", "2+2?", "four", "color?", "purple"))

	require.NotContains(t, res.StartingURL, url.QueryEscape("color?"))

	r, err := Open(res.StartingURL, "")
	require.NoError(t, err)
	_, err = r.Submit(context.Background(), "purple")
	require.ErrorIs(t, err, kerrors.ErrAnswerMismatch)
}

func TestResubmitIsIdempotent(t *testing.T) {
	res := build(t, newSpec(2, "Done", "2+2?", "four", "color?", "purple"))

	r, err := Open(res.StartingURL, "")
	require.NoError(t, err)
	first, err := r.Submit(context.Background(), "four")
	require.NoError(t, err)
	second, err := r.Submit(context.Background(), "four")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEmptyAnswerLeavesStateUnchanged(t *testing.T) {
	res := build(t, newSpec(1, "Done", "2+2?", "four"))

	r, err := Open(res.StartingURL, "")
	require.NoError(t, err)

	for _, answer := range []string{"", "   "} {
		_, err = r.Submit(context.Background(), answer)
		require.ErrorIs(t, err, kerrors.ErrEmptyAnswer)
		require.Equal(t, StateAwaitingAnswer, r.State())
	}
}

func TestNavigateResetsState(t *testing.T) {
	first := build(t, newSpec(1, "one", "a?", "a"))
	second := build(t, newSpec(1, "two", "b?", "b"))

	r, err := Open(first.StartingURL, "")
	require.NoError(t, err)
	_, err = r.Submit(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, StateTerminal, r.State())

	require.NoError(t, r.Navigate(second.StartingURL))
	require.Equal(t, StateAwaitingAnswer, r.State())
	require.Equal(t, "b?", r.Question())
	require.Equal(t, Outcome{}, r.Outcome())

	err = r.Navigate("/puzzle")
	require.ErrorIs(t, err, kerrors.ErrNoPuzzle)
	require.Equal(t, "b?", r.Question())
}

func TestContinueRequiresIntermediate(t *testing.T) {
	res := build(t, newSpec(1, "Done", "2+2?", "four"))
	r, err := Open(res.StartingURL, "")
	require.NoError(t, err)
	require.Error(t, r.Continue())
}

func TestOpenRejectsEmptyLinks(t *testing.T) {
	_, err := Open("/puzzle", "")
	require.ErrorIs(t, err, kerrors.ErrNoPuzzle)

	_, err = Open("/puzzle?q=hello", "")
	require.ErrorIs(t, err, kerrors.ErrIncompletePayload)
}

func TestNonFinalPlainTextIsTerminal(t *testing.T) {
	key, err := blindfold.GenerateSecretKey(blindfold.NewCluster(1), storeOnly, []byte("x"))
	require.NoError(t, err)
	ct, err := blindfold.Encrypt(key, "just text")
	require.NoError(t, err)

	params, err := codec.Encode(codec.StepPayload{Shares: codec.Single(ct.Shares[0]), Question: "q?"})
	require.NoError(t, err)

	r, err := Open(params.URL("/puzzle"), "")
	require.NoError(t, err)
	out, err := r.Submit(context.Background(), "X")
	require.NoError(t, err)
	require.Equal(t, StateTerminal, out.State)
	require.Equal(t, "just text", out.Message)
}

func TestOneElementArrayResolvesAsSingleNode(t *testing.T) {
	key, err := blindfold.GenerateSecretKey(blindfold.NewCluster(1), storeOnly, []byte("yes"))
	require.NoError(t, err)
	ct, err := blindfold.Encrypt(key, "legacy")
	require.NoError(t, err)

	params, err := codec.Encode(codec.StepPayload{Shares: codec.Sharded(ct.Shares), Question: "q?", IsFinal: true})
	require.NoError(t, err)

	r, err := Open(params.URL("/puzzle"), "")
	require.NoError(t, err)
	out, err := r.Submit(context.Background(), "yes")
	require.NoError(t, err)
	require.Equal(t, "legacy", out.Message)
}

func TestBasePathCarriesThrough(t *testing.T) {
	b, err := NewBuilder(BuilderOptions{BasePath: "https://example.com/p"})
	require.NoError(t, err)
	res, err := b.Build(context.Background(), newSpec(1, "Done", "a?", "a", "b?", "b"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(res.StartingURL, "https://example.com/p?s="))

	r, err := Open(res.StartingURL, "https://example.com/p")
	require.NoError(t, err)
	out, err := r.Submit(context.Background(), "a")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.NextURL, "https://example.com/p?s="))
}

func TestBuildReportsPerStep(t *testing.T) {
	res := build(t, newSpec(2, "Done", "a?", "a", "b?", "b", "c?", "c"))

	require.Len(t, res.Reports, 3)
	for i, rep := range res.Reports {
		require.Equal(t, i+1, rep.Step)
		require.Equal(t, 2, rep.Shares)
	}
	require.Zero(t, res.Reports[0].EmbeddedSize)
	require.Positive(t, res.Reports[1].EmbeddedSize)
	require.Equal(t, res.Start.Mode(), res.Reports[0].Mode)
}

func TestBuildSizeExceeded(t *testing.T) {
	b, err := NewBuilder(BuilderOptions{})
	require.NoError(t, err)

	_, err = b.Build(context.Background(), newSpec(3, "Done",
		"q1", "a1", "q2", "a2", "q3", "a3", "q4", "a4", "q5", "a5"))

	var sizeErr *kerrors.SizeExceededError
	require.ErrorAs(t, err, &sizeErr)
	require.ErrorIs(t, err, kerrors.ErrSizeExceeded)
	require.Equal(t, 3, sizeErr.Step)
	require.Equal(t, codec.DefaultHardLimit, sizeErr.Limit)
	require.Greater(t, sizeErr.JSONSize, sizeErr.Limit)
	require.Greater(t, sizeErr.Base64Size, sizeErr.Limit)
}

func TestBuildLargeCompletionExceedsOnLastStep(t *testing.T) {
	b, err := NewBuilder(BuilderOptions{})
	require.NoError(t, err)

	_, err = b.Build(context.Background(), newSpec(1, strings.Repeat("x", 3000), "a?", "a", "b?", "b"))
	var sizeErr *kerrors.SizeExceededError
	require.ErrorAs(t, err, &sizeErr)
	require.Equal(t, 2, sizeErr.Step)
}

func TestBuildSingleStepIsNeverSizeChecked(t *testing.T) {
	res := build(t, newSpec(3, strings.Repeat("x", 3000), "only?", "yes"))

	r, err := Open(res.StartingURL, "")
	require.NoError(t, err)
	out, err := r.Submit(context.Background(), "yes")
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("x", 3000), out.Message)
}

func TestBuildHonorsCancellation(t *testing.T) {
	b, err := NewBuilder(BuilderOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Build(ctx, newSpec(1, "Done", "a?", "a"))
	require.True(t, errors.Is(err, context.Canceled))
}

func TestNewBuilderValidatesLimits(t *testing.T) {
	_, err := NewBuilder(BuilderOptions{Limits: codec.Limits{Soft: 100, Hard: 5000}})
	require.ErrorIs(t, err, kerrors.ErrInvalidSettings)

	_, err = NewBuilder(BuilderOptions{Limits: codec.Limits{Soft: 200, Hard: 100}})
	require.ErrorIs(t, err, kerrors.ErrInvalidSettings)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "awaiting-answer", StateAwaitingAnswer.String())
	require.Equal(t, "terminal", StateTerminal.String())
	require.Equal(t, "State(9)", State(9).String())
}
