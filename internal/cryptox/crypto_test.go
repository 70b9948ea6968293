package cryptox

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKey_DeterministicAndBoundToInfo(t *testing.T) {
	secret := bytes.Repeat([]byte{0x42}, DeviceSecretSize)

	k1, err := DeriveKey(secret, "accessToken")
	require.NoError(t, err)
	k2, err := DeriveKey(secret, "accessToken")
	require.NoError(t, err)
	k3, err := DeriveKey(secret, "other")
	require.NoError(t, err)

	require.Len(t, k1, 32)
	require.Equal(t, k1, k2)
	require.NotEqual(t, k1, k3)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key, err := DeriveKey([]byte("device-secret"), "accessToken")
	require.NoError(t, err)

	sealed, err := Seal(key, []byte("abc123"))
	require.NoError(t, err)
	require.NotContains(t, string(sealed), "abc123")

	plain, err := Open(key, sealed)
	require.NoError(t, err)
	require.Equal(t, "abc123", string(plain))
}

func TestSeal_UsesFreshNonce(t *testing.T) {
	key, _ := DeriveKey([]byte("device-secret"), "accessToken")

	a, err := Seal(key, []byte("same"))
	require.NoError(t, err)
	b, err := Seal(key, []byte("same"))
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	k1, _ := DeriveKey([]byte("one"), "accessToken")
	k2, _ := DeriveKey([]byte("two"), "accessToken")

	sealed, err := Seal(k1, []byte("abc123"))
	require.NoError(t, err)

	_, err = Open(k2, sealed)
	require.Error(t, err)
}

func TestOpen_TamperedOrShort(t *testing.T) {
	key, _ := DeriveKey([]byte("device-secret"), "accessToken")

	sealed, err := Seal(key, []byte("abc123"))
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xFF

	_, err = Open(key, sealed)
	require.Error(t, err)

	_, err = Open(key, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrShortSealed)
}

func TestOpen_BadKeyLength(t *testing.T) {
	_, err := Seal([]byte("short"), []byte("x"))
	require.Error(t, err)
}

func TestLoadOrCreateDeviceSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "device.key")

	first, err := LoadOrCreateDeviceSecret(path)
	require.NoError(t, err)
	require.Len(t, first, DeviceSecretSize)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}

	second, err := LoadOrCreateDeviceSecret(path)
	require.NoError(t, err)
	require.Equal(t, first, second, "existing secret must be reused")
}

func TestLoadOrCreateDeviceSecret_WrongLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.key")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := LoadOrCreateDeviceSecret(path)
	require.Error(t, err)
}
