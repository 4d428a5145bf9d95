package blindfold

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/hkdf"
)

// seedContext is the BLAKE3 key derivation context for seeded keys.
// Changing it changes every key derived from a seed.
const seedContext = "riddlechain blindfold 2024-06-01 seeded secret key"

var (
	// ErrInvalidCluster indicates a cluster descriptor the key type cannot serve.
	ErrInvalidCluster = errors.New("invalid cluster configuration")

	// ErrUnsupportedCapability indicates a requested operation the library does not provide.
	ErrUnsupportedCapability = errors.New("unsupported key capability")
)

// Cluster describes the nodes taking part in an encryption.
type Cluster struct {
	Nodes int
}

// NewCluster returns a descriptor for n nodes.
func NewCluster(n int) Cluster {
	return Cluster{Nodes: n}
}

// Capabilities selects which operations a key supports. Only Store is
// implemented.
type Capabilities struct {
	Store bool
	Match bool
	Sum   bool
}

// KeyKind distinguishes secret keys from cluster keys.
type KeyKind int

const (
	// KindSecret keys hold one symmetric key per node and may be seeded.
	KindSecret KeyKind = iota
	// KindCluster keys only coordinate secret sharing across nodes.
	// They are random and cannot be re-derived.
	KindCluster
)

func (k KeyKind) String() string {
	switch k {
	case KindSecret:
		return "secret"
	case KindCluster:
		return "cluster"
	default:
		return fmt.Sprintf("KeyKind(%d)", int(k))
	}
}

// Key is a store key for a specific cluster.
type Key struct {
	kind     KeyKind
	cluster  Cluster
	caps     Capabilities
	nodeKeys [][32]byte
}

// Kind returns the key type.
func (k *Key) Kind() KeyKind { return k.kind }

// Nodes returns the cluster size the key was generated for.
func (k *Key) Nodes() int { return k.cluster.Nodes }

// GenerateSecretKey returns a secret key for the cluster. A non-empty seed
// makes the key deterministic: the same (cluster, caps, seed) always gives
// the same key. A nil seed gives a random key.
func GenerateSecretKey(cluster Cluster, caps Capabilities, seed []byte) (*Key, error) {
	if err := checkParams(cluster, caps); err != nil {
		return nil, err
	}

	var master [32]byte
	if seed != nil {
		blake3.DeriveKey(seedContext, seed, master[:])
	} else if _, err := io.ReadFull(rand.Reader, master[:]); err != nil {
		return nil, fmt.Errorf("generating key material: %w", err)
	}

	nodeKeys, err := deriveNodeKeys(master[:], cluster)
	if err != nil {
		return nil, err
	}

	return &Key{kind: KindSecret, cluster: cluster, caps: caps, nodeKeys: nodeKeys}, nil
}

// GenerateClusterKey returns a key that only splits plaintexts into
// shares. It needs at least two nodes.
func GenerateClusterKey(cluster Cluster, caps Capabilities) (*Key, error) {
	if err := checkParams(cluster, caps); err != nil {
		return nil, err
	}
	if cluster.Nodes < 2 {
		return nil, fmt.Errorf("%w: cluster keys need at least 2 nodes, got %d", ErrInvalidCluster, cluster.Nodes)
	}
	return &Key{kind: KindCluster, cluster: cluster, caps: caps}, nil
}

func checkParams(cluster Cluster, caps Capabilities) error {
	if cluster.Nodes < 1 {
		return fmt.Errorf("%w: need at least 1 node, got %d", ErrInvalidCluster, cluster.Nodes)
	}
	if !caps.Store {
		return fmt.Errorf("%w: store capability is required", ErrUnsupportedCapability)
	}
	if caps.Match || caps.Sum {
		return fmt.Errorf("%w: only store is implemented", ErrUnsupportedCapability)
	}
	return nil
}

// deriveNodeKeys expands the master key into one key per node. The
// cluster size is bound into every key so a seed used for a 3 node
// cluster yields unrelated keys for a 2 node cluster.
func deriveNodeKeys(master []byte, cluster Cluster) ([][32]byte, error) {
	keys := make([][32]byte, cluster.Nodes)
	for i := range keys {
		info := fmt.Sprintf("store/nodes=%d/node=%d", cluster.Nodes, i)
		r := hkdf.New(sha256.New, master, nil, []byte(info))
		if _, err := io.ReadFull(r, keys[i][:]); err != nil {
			return nil, fmt.Errorf("deriving key for node %d: %w", i, err)
		}
	}
	return keys, nil
}
