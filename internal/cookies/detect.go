package cookies

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"
)

// sqliteMagic opens every SQLite database file.
var sqliteMagic = []byte("SQLite format 3\x00")

var netscapeHeaders = [][]byte{
	[]byte("# Netscape HTTP Cookie File"),
	[]byte("# HTTP Cookie File"),
}

// checkStoreFile rejects paths that cannot hold a cookie store.
func checkStoreFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cookie store %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrStoreIsDir, path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyStore, path)
	}
	return nil
}

// DetectFormat reports the cookie store format of the file at path from its
// first bytes, and for SQLite files from the tables they hold.
func DetectFormat(path string) (CookieFormat, error) {
	if err := checkStoreFile(path); err != nil {
		return FormatUnknown, err
	}
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("cannot open cookie store: %w", err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return FormatUnknown, fmt.Errorf("cannot read cookie store: %w", err)
	}
	head = head[:n]

	if bytes.HasPrefix(head, sqliteMagic) {
		return detectSQLiteFormat(path)
	}
	first, _, _ := bytes.Cut(head, []byte("\n"))
	first = bytes.TrimRight(first, "\r")
	for _, h := range netscapeHeaders {
		if bytes.Equal(first, h) {
			return FormatNetscape, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnsupportedStore, path)
}

// detectSQLiteFormat tells Firefox and Chrome databases apart by their cookie table.
func detectSQLiteFormat(path string) (CookieFormat, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return FormatUnknown, fmt.Errorf("cannot open SQLite database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('moz_cookies', 'cookies')`)
	if err != nil {
		return FormatUnknown, fmt.Errorf("cannot read SQLite schema: %w", err)
	}
	defer rows.Close()

	tables := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return FormatUnknown, fmt.Errorf("cannot read SQLite schema: %w", err)
		}
		tables[name] = true
	}
	if err := rows.Err(); err != nil {
		return FormatUnknown, fmt.Errorf("cannot read SQLite schema: %w", err)
	}
	switch {
	case tables["moz_cookies"]:
		return FormatFirefox, nil
	case tables["cookies"]:
		return FormatChrome, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnsupportedStore, path)
}
