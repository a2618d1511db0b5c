package cookiejar

import (
	"os"

	"github.com/spf13/afero"
)

// fileMode is used for every cookie file written by a Store. Cookie files
// carry session credentials and are kept private to the owner.
const fileMode os.FileMode = 0600

// Store is the whole-file storage a Jar loads from and saves to.
type Store interface {
	// Exists reports whether a file exists at path.
	Exists(path string) (bool, error)
	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the file at path with data.
	WriteFile(path string, data []byte) error
}

// FsStore is a Store backed by an afero filesystem.
type FsStore struct {
	fs afero.Fs
}

// NewFsStore returns a Store reading and writing through fs.
func NewFsStore(fs afero.Fs) *FsStore {
	return &FsStore{fs: fs}
}

// OSStore returns a Store on the operating system filesystem.
func OSStore() *FsStore {
	return NewFsStore(afero.NewOsFs())
}

// Exists reports whether path exists.
func (s *FsStore) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}

// ReadFile reads the whole file at path.
func (s *FsStore) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(s.fs, path)
}

// WriteFile truncates or creates path and writes data to it.
func (s *FsStore) WriteFile(path string, data []byte) error {
	return afero.WriteFile(s.fs, path, data, fileMode)
}

var _ Store = (*FsStore)(nil)
