package codec

// Shares is the ciphertext of one step: either Single or Sharded.
type Shares interface {
	// Values returns the shares in node order.
	Values() []string
	isShares()
}

// Single is the ciphertext of a one node cluster.
type Single string

// Values implements Shares.
func (s Single) Values() []string { return []string{string(s)} }

func (Single) isShares() {}

// Sharded holds one share per node. Order is significant.
type Sharded []string

// Values implements Shares.
func (s Sharded) Values() []string { return append([]string(nil), s...) }

func (Sharded) isShares() {}

// StepPayload is everything a visitor needs to attempt one step.
type StepPayload struct {
	Shares   Shares
	Question string
	IsFinal  bool
	// IsBase64 records how Shares travelled; it is not part of the content.
	IsBase64 bool
}

// Mode selects the encoding of the s parameter.
type Mode int

const (
	// ModeJSON query-escapes the JSON form of the shares.
	ModeJSON Mode = iota
	// ModeBase64 carries the JSON form as unpadded URL-safe base64.
	ModeBase64
)

func (m Mode) String() string {
	if m == ModeBase64 {
		return "base64"
	}
	return "json"
}
