package keyring

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

const (
	keyFileName = "jar.key"
	keyFileMode = 0600
)

// FileKeyStore keeps the key hex-encoded in a 0600 file of the config
// directory. It is used where no OS keyring service is running.
type FileKeyStore struct {
	configDir string
}

var (
	fileWriteFile = os.WriteFile
	fileReadFile  = os.ReadFile
	fileRemove    = os.Remove
	fileRename    = os.Rename
	fileMkdirAll  = os.MkdirAll
)

// NewFileKeyStore returns a FileKeyStore rooted at configDir.
func NewFileKeyStore(configDir string) *FileKeyStore {
	return &FileKeyStore{configDir: configDir}
}

func (f *FileKeyStore) keyPath() string {
	return filepath.Join(f.configDir, keyFileName)
}

// SetKey generates a new key and writes it through a temporary file and a
// rename, so an interrupted write never leaves a truncated key behind.
func (f *FileKeyStore) SetKey() ([]byte, error) {
	if err := fileMkdirAll(f.configDir, 0755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	key := make([]byte, KeySize)
	if _, err := randRead(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	tmpPath := f.keyPath() + ".tmp"
	if err := fileWriteFile(tmpPath, []byte(hex.EncodeToString(key)), keyFileMode); err != nil {
		return nil, fmt.Errorf("write key: %w", err)
	}
	if err := fileRename(tmpPath, f.keyPath()); err != nil {
		fileRemove(tmpPath)
		return nil, fmt.Errorf("rename key file: %w", err)
	}
	return key, nil
}

// GetKey reads and decodes the key file.
func (f *FileKeyStore) GetKey() ([]byte, error) {
	data, err := fileReadFile(f.keyPath())
	if err != nil {
		return nil, err
	}
	return DecodeKey(string(data))
}

// DeleteKey removes the key file.
func (f *FileKeyStore) DeleteKey() error {
	return fileRemove(f.keyPath())
}

var _ Provider = (*FileKeyStore)(nil)

// Logger receives a warning when the OS keyring cannot be used.
type Logger interface {
	Warning(format string, args ...interface{})
}

// FallbackProvider uses the OS keyring and falls back to a FileKeyStore when
// the keyring is unreachable.
type FallbackProvider struct {
	primary  Provider
	fallback Provider
	log      Logger
}

// NewFallbackProvider returns a provider trying primary before fallback.
func NewFallbackProvider(primary, fallback Provider, log Logger) *FallbackProvider {
	return &FallbackProvider{primary: primary, fallback: fallback, log: log}
}

// GetKey returns the existing key from the first provider holding one.
func (p *FallbackProvider) GetKey() ([]byte, error) {
	key, err := p.primary.GetKey()
	if err == nil {
		return key, nil
	}
	return p.fallback.GetKey()
}

// SetKey creates a key in the primary provider, or in the fallback when the
// primary refuses it.
func (p *FallbackProvider) SetKey() ([]byte, error) {
	key, err := p.primary.SetKey()
	if err == nil {
		return key, nil
	}
	if p.log != nil {
		p.log.Warning("system keyring unavailable (%v), storing jar key in a file", err)
	}
	return p.fallback.SetKey()
}

var _ Provider = (*FallbackProvider)(nil)

// LoadOrCreate returns the key of p, creating one on first use.
func LoadOrCreate(p Provider) ([]byte, error) {
	if key, err := p.GetKey(); err == nil {
		return key, nil
	}
	return p.SetKey()
}
