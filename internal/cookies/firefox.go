package cookies

import "github.com/warpdl/warpcookie/pkg/cookiejar"

var firefoxSchema = sqliteSchema{
	browser: "Firefox",
	query: `
        SELECT name, value, host, path, expiry, isSecure, isHttpOnly
        FROM moz_cookies
        WHERE (? = '' OR host = ? OR host = ? OR host LIKE ?)
          AND expiry > ?
        ORDER BY path DESC, name ASC`,
	clock: func(unix int64) int64 { return unix },
	unix:  func(stored int64) int64 { return stored },
}

// ParseFirefox reads the unexpired cookies for domain from a Firefox
// cookies.sqlite file. An empty domain selects every host.
func ParseFirefox(dbPath, domain string) ([]*cookiejar.Cookie, error) {
	return readSQLite(dbPath, firefoxSchema, domain)
}
