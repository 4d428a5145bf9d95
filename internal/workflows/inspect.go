package workflows

import (
	"context"

	"github.com/PolarWolf314/riddlechain/internal/codec"
)

// InspectOptions configures the inspect workflow.
type InspectOptions struct {
	// URL is the puzzle link to decode.
	URL string
}

// InspectResult describes a link without decrypting it.
type InspectResult struct {
	Question  string
	IsFinal   bool
	Mode      codec.Mode
	Shares    []string
	Nodes     int
	URLLength int

	// EncodedSize is the length of the s parameter as it appears in the link.
	EncodedSize int
}

// Inspect decodes the parameters of a puzzle link. Nothing is decrypted.
//
// Returns ErrNoPuzzle, ErrIncompletePayload or a *DecodeError for links
// that do not hold a puzzle.
func Inspect(ctx context.Context, opts InspectOptions) (*InspectResult, error) {
	params, err := codec.ParseURL(opts.URL)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decode(params)
	if err != nil {
		return nil, err
	}

	shares := payload.Shares.Values()
	return &InspectResult{
		Question:    payload.Question,
		IsFinal:     payload.IsFinal,
		Mode:        params.Mode(),
		Shares:      shares,
		Nodes:       len(shares),
		URLLength:   len(opts.URL),
		EncodedSize: len(params.S),
	}, nil
}
