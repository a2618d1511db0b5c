package cookies

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// fixedNow is the clock every test runs at.
const fixedNow int64 = 1_700_000_000

const (
	future = fixedNow + 86_400
	past   = fixedNow - 86_400
)

func freezeClock(t *testing.T) {
	t.Helper()
	old := nowFunc
	nowFunc = func() time.Time { return time.Unix(fixedNow, 0) }
	t.Cleanup(func() { nowFunc = old })
}

type firefoxRow struct {
	Name, Value, Host, Path string
	Expiry                  int64
	IsSecure, IsHttpOnly    int
}

func createFirefoxFixture(t *testing.T, dir string, rows []firefoxRow) string {
	t.Helper()
	dbPath := filepath.Join(dir, "cookies.sqlite")
	execFixture(t, dbPath, `CREATE TABLE moz_cookies (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        value TEXT NOT NULL,
        host TEXT NOT NULL,
        path TEXT NOT NULL DEFAULT '/',
        expiry INTEGER NOT NULL DEFAULT 0,
        isSecure INTEGER NOT NULL DEFAULT 0,
        isHttpOnly INTEGER NOT NULL DEFAULT 0
    )`, `INSERT INTO moz_cookies (name, value, host, path, expiry, isSecure, isHttpOnly) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		func(insert func(args ...any)) {
			for _, r := range rows {
				insert(r.Name, r.Value, r.Host, r.Path, r.Expiry, r.IsSecure, r.IsHttpOnly)
			}
		})
	return dbPath
}

type chromeRow struct {
	Name, Value    string
	EncryptedValue []byte
	HostKey, Path  string
	// ExpiresUTC is in Chrome microseconds, 0 for session cookies.
	ExpiresUTC           int64
	IsSecure, IsHttpOnly int
}

func createChromeFixture(t *testing.T, dir string, rows []chromeRow) string {
	t.Helper()
	dbPath := filepath.Join(dir, "Cookies")
	execFixture(t, dbPath, `CREATE TABLE cookies (
        creation_utc INTEGER NOT NULL,
        host_key TEXT NOT NULL,
        name TEXT NOT NULL,
        value TEXT NOT NULL,
        encrypted_value BLOB NOT NULL DEFAULT x'',
        path TEXT NOT NULL DEFAULT '/',
        expires_utc INTEGER NOT NULL DEFAULT 0,
        is_secure INTEGER NOT NULL DEFAULT 0,
        is_httponly INTEGER NOT NULL DEFAULT 0
    )`, `INSERT INTO cookies (creation_utc, host_key, name, value, encrypted_value, path, expires_utc, is_secure, is_httponly) VALUES (0, ?, ?, ?, ?, ?, ?, ?, ?)`,
		func(insert func(args ...any)) {
			for _, r := range rows {
				enc := r.EncryptedValue
				if enc == nil {
					enc = []byte{}
				}
				insert(r.HostKey, r.Name, r.Value, enc, r.Path, r.ExpiresUTC, r.IsSecure, r.IsHttpOnly)
			}
		})
	return dbPath
}

func execFixture(t *testing.T, dbPath, schema, insertSQL string, fill func(insert func(args ...any))) {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	stmt, err := db.Prepare(insertSQL)
	if err != nil {
		t.Fatalf("failed to prepare insert: %v", err)
	}
	defer stmt.Close()
	fill(func(args ...any) {
		if _, err := stmt.Exec(args...); err != nil {
			t.Fatalf("failed to insert row: %v", err)
		}
	})
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
