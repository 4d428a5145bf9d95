package codec

import (
	"fmt"

	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
)

// Default limits. Hard stays below the library ceiling to leave room for
// encoding growth between releases.
const (
	DefaultSoftLimit = 3500
	DefaultHardLimit = 4000
	DefaultURLWarn   = 2000
)

// Limits bounds the size of the message one step embeds for the next.
type Limits struct {
	// Soft is the size above which a message is reported as close to the ceiling.
	Soft int
	// Hard is the largest message accepted.
	Hard int
	// URLWarn is the starting URL length above which callers should warn.
	URLWarn int
}

// DefaultLimits returns the built-in limits.
func DefaultLimits() Limits {
	return Limits{Soft: DefaultSoftLimit, Hard: DefaultHardLimit, URLWarn: DefaultURLWarn}
}

// Validate checks the limits against the plaintext ceiling of the
// encryption library in use.
func (l Limits) Validate(ceiling int) error {
	switch {
	case l.Hard <= 0 || l.Hard > ceiling:
		return fmt.Errorf("%w: hard limit %d must be between 1 and the library ceiling %d", kerrors.ErrInvalidSettings, l.Hard, ceiling)
	case l.Soft <= 0 || l.Soft > l.Hard:
		return fmt.Errorf("%w: soft limit %d must be between 1 and the hard limit %d", kerrors.ErrInvalidSettings, l.Soft, l.Hard)
	case l.URLWarn < 0:
		return fmt.Errorf("%w: url warning length %d must not be negative", kerrors.ErrInvalidSettings, l.URLWarn)
	}
	return nil
}

// Fitted is a step encoding that fits the hard limit.
type Fitted struct {
	Params  Params
	Message []byte
	// OverSoft is set when the message is above the soft limit.
	OverSoft bool
}

// Fit encodes p for embedding in the previous step. It tries the codec's
// preferred encoding first and the other one second, and fails with a
// *errors.SizeExceededError naming step when neither fits.
func (l Limits) Fit(step int, p StepPayload) (Fitted, error) {
	asJSON, asBase64, err := encodeBoth(p)
	if err != nil {
		return Fitted{}, err
	}

	jsonMsg, err := asJSON.Message()
	if err != nil {
		return Fitted{}, err
	}
	base64Msg, err := asBase64.Message()
	if err != nil {
		return Fitted{}, err
	}

	first := Fitted{Params: asJSON, Message: jsonMsg}
	second := Fitted{Params: asBase64, Message: base64Msg}
	if prefer(asJSON, asBase64).B64 {
		first, second = second, first
	}

	for _, candidate := range []Fitted{first, second} {
		if len(candidate.Message) <= l.Hard {
			candidate.OverSoft = len(candidate.Message) > l.Soft
			return candidate, nil
		}
	}

	return Fitted{}, &kerrors.SizeExceededError{
		Step:       step,
		JSONSize:   len(jsonMsg),
		Base64Size: len(base64Msg),
		Limit:      l.Hard,
	}
}
