// Package encryption seals and opens byte payloads with AES-GCM.
package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

// Prefix opens every sealed payload so sealed and plain files can be told apart.
const Prefix = "wcgcm1"

// ErrCiphertextShort is returned when a sealed payload is cut before its nonce ends.
var ErrCiphertextShort = errors.New("ciphertext too short")

var randReader io.Reader = rand.Reader

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with key (16, 24 or 32 bytes) as Prefix, nonce, ciphertext.
func Seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(Prefix)+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, Prefix...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, []byte(Prefix)), nil
}

// IsSealed reports whether data starts with Prefix.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Prefix))
}

// Open decrypts a payload produced by Seal.
func Open(sealed, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	body := bytes.TrimPrefix(sealed, []byte(Prefix))
	if len(body) < gcm.NonceSize() {
		return nil, ErrCiphertextShort
	}
	nonce, data := body[:gcm.NonceSize()], body[gcm.NonceSize():]
	return gcm.Open(nil, nonce, data, []byte(Prefix))
}
