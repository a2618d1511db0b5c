package cookies

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// copyFs is the filesystem SafeCopy works on. The SQLite driver opens the
// copy by path, so it must be backed by the OS filesystem outside tests.
var copyFs afero.Fs = afero.NewOsFs()

// SafeCopy copies a SQLite cookie database, with its -wal and -shm companions
// when present, into a fresh temporary directory so that a browser holding
// the original open does not lock the reader out. The returned cleanup
// removes the directory and must always be called.
func SafeCopy(srcPath string) (tempDir string, cleanup func(), err error) {
	if err := checkStoreFile(srcPath); err != nil {
		return "", nil, err
	}
	tempDir, err = afero.TempDir(copyFs, "", "warpcookie-import-*")
	if err != nil {
		return "", nil, fmt.Errorf("cannot create temp directory: %w", err)
	}
	cleanup = func() { _ = copyFs.RemoveAll(tempDir) }

	base := filepath.Base(srcPath)
	if err := copyFile(srcPath, filepath.Join(tempDir, base)); err != nil {
		cleanup()
		return "", nil, err
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		companion := srcPath + suffix
		if ok, _ := afero.Exists(copyFs, companion); !ok {
			continue
		}
		// Companions are best effort: the main file is readable without them.
		_ = copyFile(companion, filepath.Join(tempDir, base+suffix))
	}
	return tempDir, cleanup, nil
}

func copyFile(src, dst string) error {
	in, err := copyFs.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", src, err)
	}
	defer in.Close()

	out, err := copyFs.Create(dst)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("cannot copy %s: %w", src, err)
	}
	return out.Close()
}
