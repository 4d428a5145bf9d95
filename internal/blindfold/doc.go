// Package blindfold provides the store-only secret sharing primitives the
// puzzle chain is built on.
//
// The chain packages treat this package as an opaque library with three
// operations: GenerateSecretKey (deterministic when seeded), Encrypt and
// Decrypt.
//
// # Keys
//
// A secret key holds one 32-byte symmetric key per cluster node. Seeded
// keys derive a master key from the seed with BLAKE3 in key derivation
// mode, then expand it per node with HKDF-SHA256. The cluster size is part
// of the HKDF info, so a key is bound to its cluster descriptor.
//
// Cluster keys are random and only coordinate XOR sharing; they exist so
// callers can reject them where a key must be re-derivable.
//
// # Ciphertexts
//
// Plaintexts are tagged (string or int32) and XOR-split into one share per
// node. With a secret key each share is sealed with NaCl secretbox under
// its node key using a random nonce prepended to the box. Shares are
// standard base64 and their order matters.
//
// Decryption failures all return ErrDecryptFailed.
package blindfold
