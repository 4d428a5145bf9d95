package blindfold

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

// MaxPlaintextSize is the largest string plaintext Encrypt accepts, in bytes.
const MaxPlaintextSize = 4096

const nonceSize = 24

// Plaintext type tags, stored as the first byte of every encoded message.
const (
	tagString byte = 's'
	tagInt32  byte = 'i'
)

var (
	// ErrPlaintextTooLarge indicates a plaintext above MaxPlaintextSize.
	ErrPlaintextTooLarge = errors.New("plaintext exceeds maximum size")

	// ErrDecryptFailed is returned for every decryption failure. It does
	// not say whether the key, the share count or a share was wrong.
	ErrDecryptFailed = errors.New("decryption failed")
)

// Ciphertext holds one base64 share per node, in node order. A single
// node cluster yields exactly one share.
type Ciphertext struct {
	Shares []string
}

// Single reports whether the ciphertext came from a one node cluster.
func (c Ciphertext) Single() bool { return len(c.Shares) == 1 }

// Encrypt encrypts a UTF-8 string under key.
func Encrypt(key *Key, plaintext string) (Ciphertext, error) {
	if len(plaintext) > MaxPlaintextSize {
		return Ciphertext{}, fmt.Errorf("%w: %d bytes, limit %d", ErrPlaintextTooLarge, len(plaintext), MaxPlaintextSize)
	}
	msg := make([]byte, 1+len(plaintext))
	msg[0] = tagString
	copy(msg[1:], plaintext)
	return seal(key, msg)
}

// EncryptInt32 encrypts a 32-bit signed integer under key.
func EncryptInt32(key *Key, v int32) (Ciphertext, error) {
	msg := make([]byte, 5)
	msg[0] = tagInt32
	binary.BigEndian.PutUint32(msg[1:], uint32(v))
	return seal(key, msg)
}

// Decrypt reverses Encrypt.
func Decrypt(key *Key, ct Ciphertext) (string, error) {
	msg, err := open(key, ct)
	if err != nil {
		return "", err
	}
	if msg[0] != tagString {
		return "", ErrDecryptFailed
	}
	return string(msg[1:]), nil
}

// DecryptInt32 reverses EncryptInt32.
func DecryptInt32(key *Key, ct Ciphertext) (int32, error) {
	msg, err := open(key, ct)
	if err != nil {
		return 0, err
	}
	if msg[0] != tagInt32 || len(msg) != 5 {
		return 0, ErrDecryptFailed
	}
	return int32(binary.BigEndian.Uint32(msg[1:])), nil
}

func seal(key *Key, msg []byte) (Ciphertext, error) {
	shares, err := split(msg, key.cluster.Nodes)
	if err != nil {
		return Ciphertext{}, err
	}

	out := make([]string, len(shares))
	for i, share := range shares {
		if key.kind == KindCluster {
			out[i] = base64.StdEncoding.EncodeToString(share)
			continue
		}

		var nonce [nonceSize]byte
		if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
			return Ciphertext{}, fmt.Errorf("generating nonce: %w", err)
		}
		sealed := secretbox.Seal(nonce[:], share, &nonce, &key.nodeKeys[i])
		out[i] = base64.StdEncoding.EncodeToString(sealed)
	}

	return Ciphertext{Shares: out}, nil
}

func open(key *Key, ct Ciphertext) ([]byte, error) {
	if len(ct.Shares) != key.cluster.Nodes {
		return nil, ErrDecryptFailed
	}

	shares := make([][]byte, len(ct.Shares))
	for i, encoded := range ct.Shares {
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, ErrDecryptFailed
		}

		if key.kind == KindCluster {
			shares[i] = raw
			continue
		}

		if len(raw) < nonceSize+secretbox.Overhead {
			return nil, ErrDecryptFailed
		}
		var nonce [nonceSize]byte
		copy(nonce[:], raw[:nonceSize])
		plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &key.nodeKeys[i])
		if !ok {
			return nil, ErrDecryptFailed
		}
		shares[i] = plain
	}

	msg, err := combine(shares)
	if err != nil || len(msg) == 0 {
		return nil, ErrDecryptFailed
	}
	return msg, nil
}

// split XOR-shares msg across n nodes. Any n-1 shares reveal nothing.
func split(msg []byte, n int) ([][]byte, error) {
	if n == 1 {
		return [][]byte{msg}, nil
	}

	shares := make([][]byte, n)
	last := make([]byte, len(msg))
	copy(last, msg)
	for i := 0; i < n-1; i++ {
		mask := make([]byte, len(msg))
		if _, err := io.ReadFull(rand.Reader, mask); err != nil {
			return nil, fmt.Errorf("generating share: %w", err)
		}
		for j := range last {
			last[j] ^= mask[j]
		}
		shares[i] = mask
	}
	shares[n-1] = last
	return shares, nil
}

func combine(shares [][]byte) ([]byte, error) {
	out := make([]byte, len(shares[0]))
	for _, share := range shares {
		if len(share) != len(out) {
			return nil, ErrDecryptFailed
		}
		for j := range out {
			out[j] ^= share[j]
		}
	}
	return out, nil
}
