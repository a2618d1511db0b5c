// Package keyring stores the key that seals cookie jars, in the operating
// system keyring when one is available and in a private file otherwise.
package keyring

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeySize is the length of generated keys (AES-256).
const KeySize = 32

// Provider reads and creates the sealing key.
type Provider interface {
	GetKey() ([]byte, error)
	SetKey() ([]byte, error)
}

// Keyring keeps the key hex-encoded in the OS keyring.
type Keyring struct {
	AppName  string
	KeyField string
}

var (
	keyringSet    = keyring.Set
	keyringGet    = keyring.Get
	keyringDelete = keyring.Delete
	randRead      = rand.Read
)

// NewKeyring returns a Keyring using the warpcookie service entry.
func NewKeyring() *Keyring {
	return &Keyring{
		AppName:  "warpcookie",
		KeyField: "jar",
	}
}

// SetKey generates a new key and stores it in the keyring.
func (k *Keyring) SetKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := randRead(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	if err := keyringSet(k.AppName, k.KeyField, hex.EncodeToString(key)); err != nil {
		return nil, err
	}
	return key, nil
}

// GetKey reads and decodes the stored key.
func (k *Keyring) GetKey() ([]byte, error) {
	keyHex, err := keyringGet(k.AppName, k.KeyField)
	if err != nil {
		return nil, err
	}
	return DecodeKey(keyHex)
}

// DeleteKey removes the key from the keyring.
func (k *Keyring) DeleteKey() error {
	return keyringDelete(k.AppName, k.KeyField)
}

// DecodeKey decodes a hex key and checks its length.
func DecodeKey(keyHex string) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid key format: %w", err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key length: expected %d, got %d", KeySize, len(key))
	}
	return key, nil
}

var _ Provider = (*Keyring)(nil)
