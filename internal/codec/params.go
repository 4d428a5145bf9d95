package codec

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Params holds the query values of an encoded step exactly as they appear
// in a link: s and q are already escaped. Its JSON form is what an earlier
// step's plaintext carries.
type Params struct {
	S   string `json:"s"`
	Q   string `json:"q"`
	F   Flag   `json:"f,omitempty"`
	B64 Flag   `json:"b64,omitempty"`
}

// Mode reports the encoding of S.
func (p Params) Mode() Mode {
	if p.B64 {
		return ModeBase64
	}
	return ModeJSON
}

// URL renders the link for base, e.g. "/puzzle?s=..&q=..&f=1".
func (p Params) URL(base string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("?s=")
	b.WriteString(p.S)
	b.WriteString("&q=")
	b.WriteString(p.Q)
	if p.F {
		b.WriteString("&f=1")
	}
	if p.B64 {
		b.WriteString("&b64=1")
	}
	return b.String()
}

// Message returns the compact JSON form embedded in the previous step.
func (p Params) Message() ([]byte, error) {
	return marshalCompact(p)
}

// ParseMessage reads a decrypted plaintext as the Params of a next step.
// It reports false when the plaintext is not such a message.
func ParseMessage(plaintext string) (Params, bool) {
	trimmed := strings.TrimSpace(plaintext)
	if !strings.HasPrefix(trimmed, "{") {
		return Params{}, false
	}
	var p Params
	if err := json.Unmarshal([]byte(trimmed), &p); err != nil {
		return Params{}, false
	}
	if p.S == "" || p.Q == "" {
		return Params{}, false
	}
	return p, true
}

// Flag is a boolean query flag. It is written as 1 and read from 1, 0,
// true, false or their string forms.
type Flag bool

// MarshalJSON implements json.Marshaler.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = Flag(truthy(strings.Trim(string(data), `"`)))
	return nil
}

func truthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

// marshalCompact is json.Marshal without HTML escaping or a trailing newline.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
