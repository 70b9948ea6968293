// Package cryptox seals small secrets for storage on the local device.
//
// A random device secret lives in a key file next to the database. The AES
// key used for a given purpose is derived from it with HKDF-SHA256, so the
// raw secret never encrypts anything directly. Sealed values are the GCM
// nonce followed by the ciphertext.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/projectboard/internal/common"
	"github.com/dmitrijs2005/projectboard/internal/filex"
	"golang.org/x/crypto/hkdf"
)

// DeviceSecretSize is the length of the secret stored in the key file.
const DeviceSecretSize = 32

// ErrShortSealed is returned by Open when the input cannot hold a nonce.
var ErrShortSealed = errors.New("sealed value too short")

// DeriveKey expands secret into a 32-byte AES-256 key bound to info.
func DeriveKey(secret []byte, info string) ([]byte, error) {
	key := make([]byte, 32)
	r := hkdf.New(sha256.New, secret, nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with AES-GCM under key and returns nonce||ciphertext.
// A fresh random nonce is used for every call.
func Seal(key, plaintext []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())
	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal. It fails if the key is wrong or the data was modified.
func Open(key, sealed []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ns := aesgcm.NonceSize()
	if len(sealed) < ns {
		return nil, ErrShortSealed
	}
	return aesgcm.Open(nil, sealed[:ns], sealed[ns:], nil)
}

// LoadOrCreateDeviceSecret reads the device secret from path, creating the
// file with a new random secret (mode 0600) when it does not exist yet.
func LoadOrCreateDeviceSecret(path string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	if err == nil {
		if len(secret) != DeviceSecretSize {
			return nil, fmt.Errorf("device key %s: unexpected length %d", path, len(secret))
		}
		return secret, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read device key: %w", err)
	}

	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	secret = common.GenerateRandByteArray(DeviceSecretSize)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create device key: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(secret); err != nil {
		return nil, fmt.Errorf("write device key: %w", err)
	}
	return secret, nil
}
