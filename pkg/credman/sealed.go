// Package credman keeps cookie jars encrypted at rest.
//
// A SealedStore wraps any cookiejar.Store: files are sealed with AES-GCM on
// write and opened on read, so a jar saved through it never reaches the disk
// in clear text. Plain cookie files are read unchanged and come back sealed on
// the next save.
package credman

import (
	"fmt"

	"github.com/warpdl/warpcookie/pkg/cookiejar"
	"github.com/warpdl/warpcookie/pkg/credman/encryption"
)

// SealedStore is a cookiejar.Store that encrypts file contents.
type SealedStore struct {
	inner cookiejar.Store
	key   []byte
}

// NewSealedStore returns a store sealing everything written to inner with key.
// The key must be 16, 24 or 32 bytes long.
func NewSealedStore(inner cookiejar.Store, key []byte) (*SealedStore, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("invalid sealing key length %d", len(key))
	}
	return &SealedStore{inner: inner, key: key}, nil
}

// Exists reports whether path exists in the inner store.
func (s *SealedStore) Exists(path string) (bool, error) {
	return s.inner.Exists(path)
}

// ReadFile reads path and opens it when sealed.
func (s *SealedStore) ReadFile(path string) ([]byte, error) {
	data, err := s.inner.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !encryption.IsSealed(data) {
		return data, nil
	}
	plain, err := encryption.Open(data, s.key)
	if err != nil {
		return nil, fmt.Errorf("cannot open sealed jar %s: %w", path, err)
	}
	return plain, nil
}

// WriteFile seals data and writes it to path.
func (s *SealedStore) WriteFile(path string, data []byte) error {
	sealed, err := encryption.Seal(data, s.key)
	if err != nil {
		return fmt.Errorf("cannot seal jar %s: %w", path, err)
	}
	return s.inner.WriteFile(path, sealed)
}

var _ cookiejar.Store = (*SealedStore)(nil)
