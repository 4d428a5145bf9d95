package blindfold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var store = Capabilities{Store: true}

func TestSeededKeyIsDeterministic(t *testing.T) {
	for nodes := 1; nodes <= 3; nodes++ {
		a, err := GenerateSecretKey(NewCluster(nodes), store, []byte("purple"))
		require.NoError(t, err)
		b, err := GenerateSecretKey(NewCluster(nodes), store, []byte("purple"))
		require.NoError(t, err)
		require.Equal(t, a.nodeKeys, b.nodeKeys)
		require.Len(t, a.nodeKeys, nodes)
	}
}

func TestSeededKeyBoundToCluster(t *testing.T) {
	two, err := GenerateSecretKey(NewCluster(2), store, []byte("four"))
	require.NoError(t, err)
	three, err := GenerateSecretKey(NewCluster(3), store, []byte("four"))
	require.NoError(t, err)
	require.NotEqual(t, two.nodeKeys[0], three.nodeKeys[0])
}

func TestUnseededKeysDiffer(t *testing.T) {
	a, err := GenerateSecretKey(NewCluster(1), store, nil)
	require.NoError(t, err)
	b, err := GenerateSecretKey(NewCluster(1), store, nil)
	require.NoError(t, err)
	require.NotEqual(t, a.nodeKeys, b.nodeKeys)
}

func TestGenerateSecretKeyRejectsBadParams(t *testing.T) {
	_, err := GenerateSecretKey(NewCluster(0), store, []byte("x"))
	require.ErrorIs(t, err, ErrInvalidCluster)

	_, err = GenerateSecretKey(NewCluster(1), Capabilities{}, []byte("x"))
	require.ErrorIs(t, err, ErrUnsupportedCapability)

	_, err = GenerateSecretKey(NewCluster(1), Capabilities{Store: true, Sum: true}, []byte("x"))
	require.ErrorIs(t, err, ErrUnsupportedCapability)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	messages := []string{"", "Done", "🎉 Puzzle Complete!", strings.Repeat("x", MaxPlaintextSize)}

	for nodes := 1; nodes <= 3; nodes++ {
		key, err := GenerateSecretKey(NewCluster(nodes), store, []byte("cat"))
		require.NoError(t, err)

		for _, msg := range messages {
			ct, err := Encrypt(key, msg)
			require.NoError(t, err)
			require.Len(t, ct.Shares, nodes)
			require.Equal(t, nodes == 1, ct.Single())

			got, err := Decrypt(key, ct)
			require.NoError(t, err)
			require.Equal(t, msg, got)
		}
	}
}

func TestDecryptWithRederivedKey(t *testing.T) {
	key, err := GenerateSecretKey(NewCluster(3), store, []byte("four"))
	require.NoError(t, err)
	ct, err := Encrypt(key, "color?")
	require.NoError(t, err)

	again, err := GenerateSecretKey(NewCluster(3), store, []byte("four"))
	require.NoError(t, err)
	got, err := Decrypt(again, ct)
	require.NoError(t, err)
	require.Equal(t, "color?", got)
}

func TestDecryptWrongKeyFails(t *testing.T) {
	for nodes := 1; nodes <= 3; nodes++ {
		key, err := GenerateSecretKey(NewCluster(nodes), store, []byte("four"))
		require.NoError(t, err)
		wrong, err := GenerateSecretKey(NewCluster(nodes), store, []byte("five"))
		require.NoError(t, err)

		ct, err := Encrypt(key, "secret")
		require.NoError(t, err)

		_, err = Decrypt(wrong, ct)
		require.ErrorIs(t, err, ErrDecryptFailed)
	}
}

func TestDecryptReorderedSharesFails(t *testing.T) {
	key, err := GenerateSecretKey(NewCluster(3), store, []byte("four"))
	require.NoError(t, err)
	ct, err := Encrypt(key, "ordered")
	require.NoError(t, err)

	swapped := Ciphertext{Shares: []string{ct.Shares[1], ct.Shares[0], ct.Shares[2]}}
	_, err = Decrypt(key, swapped)
	require.ErrorIs(t, err, ErrDecryptFailed)
}

func TestDecryptMalformedCiphertextFails(t *testing.T) {
	key, err := GenerateSecretKey(NewCluster(2), store, []byte("four"))
	require.NoError(t, err)
	ct, err := Encrypt(key, "shape")
	require.NoError(t, err)

	tests := []struct {
		name string
		ct   Ciphertext
	}{
		{"too few shares", Ciphertext{Shares: ct.Shares[:1]}},
		{"too many shares", Ciphertext{Shares: append(append([]string{}, ct.Shares...), ct.Shares[0])}},
		{"not base64", Ciphertext{Shares: []string{"!!!", ct.Shares[1]}}},
		{"truncated box", Ciphertext{Shares: []string{"AAAA", ct.Shares[1]}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(key, tt.ct)
			require.ErrorIs(t, err, ErrDecryptFailed)
		})
	}
}

func TestEncryptRejectsOversizedPlaintext(t *testing.T) {
	key, err := GenerateSecretKey(NewCluster(1), store, []byte("big"))
	require.NoError(t, err)
	_, err = Encrypt(key, strings.Repeat("x", MaxPlaintextSize+1))
	require.ErrorIs(t, err, ErrPlaintextTooLarge)
}

func TestInt32RoundTrip(t *testing.T) {
	key, err := GenerateSecretKey(NewCluster(2), store, []byte("sum"))
	require.NoError(t, err)

	for _, v := range []int32{0, 42, -1, 2147483647, -2147483648} {
		ct, err := EncryptInt32(key, v)
		require.NoError(t, err)
		got, err := DecryptInt32(key, ct)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	ct, err := EncryptInt32(key, 7)
	require.NoError(t, err)
	_, err = Decrypt(key, ct)
	require.ErrorIs(t, err, ErrDecryptFailed)
}

func TestClusterKey(t *testing.T) {
	_, err := GenerateClusterKey(NewCluster(1), store)
	require.ErrorIs(t, err, ErrInvalidCluster)

	key, err := GenerateClusterKey(NewCluster(3), store)
	require.NoError(t, err)
	require.Equal(t, KindCluster, key.Kind())
	require.Equal(t, "cluster", key.Kind().String())

	ct, err := Encrypt(key, "shared")
	require.NoError(t, err)
	require.Len(t, ct.Shares, 3)

	got, err := Decrypt(key, ct)
	require.NoError(t, err)
	require.Equal(t, "shared", got)
}
