package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
)

var errNoShares = errors.New("payload has no shares")

// Encode encodes p, choosing base64 only when it is strictly shorter than
// the query-escaped JSON form.
func Encode(p StepPayload) (Params, error) {
	asJSON, asBase64, err := encodeBoth(p)
	if err != nil {
		return Params{}, err
	}
	return prefer(asJSON, asBase64), nil
}

// EncodeWith encodes p in the given mode. p.IsBase64 is ignored.
func EncodeWith(p StepPayload, mode Mode) (Params, error) {
	raw, err := sharesJSON(p.Shares)
	if err != nil {
		return Params{}, err
	}
	return encodeRaw(raw, p, mode), nil
}

func encodeBoth(p StepPayload) (Params, Params, error) {
	raw, err := sharesJSON(p.Shares)
	if err != nil {
		return Params{}, Params{}, err
	}
	return encodeRaw(raw, p, ModeJSON), encodeRaw(raw, p, ModeBase64), nil
}

func encodeRaw(raw []byte, p StepPayload, mode Mode) Params {
	params := Params{
		Q: url.QueryEscape(p.Question),
		F: Flag(p.IsFinal),
	}
	if mode == ModeBase64 {
		params.S = base64.RawURLEncoding.EncodeToString(raw)
		params.B64 = true
	} else {
		params.S = url.QueryEscape(string(raw))
	}
	return params
}

func prefer(asJSON, asBase64 Params) Params {
	if len(asBase64.S) < len(asJSON.S) {
		return asBase64
	}
	return asJSON
}

func sharesJSON(s Shares) ([]byte, error) {
	switch v := s.(type) {
	case Single:
		return marshalCompact(string(v))
	case Sharded:
		if len(v) == 0 {
			return nil, errNoShares
		}
		return marshalCompact([]string(v))
	default:
		return nil, errNoShares
	}
}

// Decode is the inverse of Encode and EncodeWith.
func Decode(p Params) (StepPayload, error) {
	switch {
	case p.S == "" && p.Q == "":
		return StepPayload{}, kerrors.ErrNoPuzzle
	case p.S == "":
		return StepPayload{}, &kerrors.IncompletePayloadError{Missing: "s"}
	case p.Q == "":
		return StepPayload{}, &kerrors.IncompletePayloadError{Missing: "q"}
	}

	var raw []byte
	if p.B64 {
		decoded, err := decodeBase64(p.S)
		if err != nil {
			return StepPayload{}, &kerrors.DecodeError{Param: "s", Raw: p.S, Cause: err}
		}
		raw = decoded
	} else {
		unescaped, err := url.QueryUnescape(p.S)
		if err != nil {
			return StepPayload{}, &kerrors.DecodeError{Param: "s", Raw: p.S, Cause: err}
		}
		raw = []byte(unescaped)
	}

	shares, err := parseShares(raw)
	if err != nil {
		return StepPayload{}, &kerrors.DecodeError{Param: "s", Raw: p.S, Cause: err}
	}

	question, err := url.QueryUnescape(p.Q)
	if err != nil {
		return StepPayload{}, &kerrors.DecodeError{Param: "q", Raw: p.Q, Cause: err}
	}

	return StepPayload{
		Shares:   shares,
		Question: question,
		IsFinal:  bool(p.F),
		IsBase64: bool(p.B64),
	}, nil
}

// parseShares resolves the Single/Sharded shape once: an array is
// Sharded, a string is Single.
func parseShares(raw []byte) (Shares, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case string:
		return Single(val), nil
	case []any:
		if len(val) == 0 {
			return nil, errNoShares
		}
		out := make(Sharded, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("share %d is %T, want string", i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("shares are %T, want string or array", v)
	}
}

// decodeBase64 accepts URL-safe and standard alphabets, padded or not.
func decodeBase64(s string) ([]byte, error) {
	var firstErr error
	for _, enc := range []*base64.Encoding{base64.RawURLEncoding, base64.URLEncoding, base64.StdEncoding, base64.RawStdEncoding} {
		b, err := enc.DecodeString(s)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// Parameter names, with the long names older links used.
var (
	sharesKeys   = []string{"s", "shares"}
	questionKeys = []string{"q", "question"}
	finalKeys    = []string{"f", "finalQuestion"}
	base64Keys   = []string{"b64"}
)

// ParseURL extracts the still-escaped puzzle parameters from a link. It
// accepts full URLs, paths with a query, or a bare query string.
func ParseURL(link string) (Params, error) {
	link = strings.TrimSpace(link)
	rawQuery := link
	if i := strings.IndexByte(link, '?'); i >= 0 {
		u, err := url.Parse(link)
		if err != nil {
			return Params{}, &kerrors.DecodeError{Param: "url", Raw: link, Cause: err}
		}
		rawQuery = u.RawQuery
	} else if !strings.Contains(link, "=") {
		rawQuery = ""
	}

	values := splitQuery(rawQuery)
	return Params{
		S:   lookup(values, sharesKeys),
		Q:   lookup(values, questionKeys),
		F:   Flag(truthy(lookup(values, finalKeys))),
		B64: Flag(truthy(lookup(values, base64Keys))),
	}, nil
}

// splitQuery maps each key to its first raw value. Values are not
// unescaped; Decode does that.
func splitQuery(rawQuery string) map[string]string {
	values := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if _, seen := values[key]; !seen {
			values[key] = value
		}
	}
	return values
}

func lookup(values map[string]string, keys []string) string {
	for _, k := range keys {
		if v := values[k]; v != "" {
			return v
		}
	}
	return ""
}
