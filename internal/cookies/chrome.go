package cookies

import "github.com/warpdl/warpcookie/pkg/cookiejar"

// chromeEpochOffset is the number of seconds between 1601-01-01 UTC, the
// origin of Chrome timestamps, and the Unix epoch.
const chromeEpochOffset int64 = 11_644_473_600

// chromeToUnix converts microseconds since 1601 to Unix seconds.
func chromeToUnix(usec int64) int64 {
	if usec == 0 {
		return 0
	}
	return usec/1_000_000 - chromeEpochOffset
}

func unixToChrome(sec int64) int64 {
	return (sec + chromeEpochOffset) * 1_000_000
}

// Encrypted values are stored in encrypted_value with an empty value column
// and are left out. Session cookies have expires_utc = 0.
var chromeSchema = sqliteSchema{
	browser: "Chrome",
	query: `
        SELECT name, value, host_key, path, expires_utc, is_secure, is_httponly
        FROM cookies
        WHERE (? = '' OR host_key = ? OR host_key = ? OR host_key LIKE ?)
          AND value != ''
          AND (expires_utc = 0 OR expires_utc > ?)
        ORDER BY path DESC, name ASC`,
	clock: unixToChrome,
	unix:  chromeToUnix,
}

// ParseChrome reads the unexpired, unencrypted cookies for domain from a
// Chromium Cookies file. An empty domain selects every host.
func ParseChrome(dbPath, domain string) ([]*cookiejar.Cookie, error) {
	return readSQLite(dbPath, chromeSchema, domain)
}
