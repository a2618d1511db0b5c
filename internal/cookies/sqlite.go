package cookies

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/warpdl/warpcookie/pkg/cookiejar"
	_ "modernc.org/sqlite"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// sqliteSchema describes how one browser lays out its cookie table. The query
// selects name, value, host, path, expiry, secure and httponly in that order
// and takes the domain filter arguments followed by the current time in the
// browser's own clock.
type sqliteSchema struct {
	browser string
	query   string
	// clock converts Unix seconds to the browser's timestamp unit.
	clock func(unix int64) int64
	// unix converts a stored expiry back to Unix seconds. 0 stays 0.
	unix func(stored int64) int64
}

// domainArgs returns the arguments of the "(? = '' OR h = ? OR h = ? OR h LIKE ?)"
// filter shared by every schema. An empty domain matches every host.
func domainArgs(domain string) []any {
	return []any{domain, domain, "." + domain, "%." + domain}
}

// readSQLite opens dbPath read-only and returns the cookies that match domain
// and have not expired. dbPath should point at a copy of the browser's file.
func readSQLite(dbPath string, schema sqliteSchema, domain string) ([]*cookiejar.Cookie, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?immutable=1", dbPath))
	if err != nil {
		return nil, fmt.Errorf("cannot open %s cookie database: %w", schema.browser, err)
	}
	defer db.Close()

	args := append(domainArgs(domain), schema.clock(nowFunc().Unix()))
	rows, err := db.Query(schema.query, args...)
	if err != nil {
		return nil, fmt.Errorf("cannot query %s cookies: %w", schema.browser, err)
	}
	defer rows.Close()

	var out []*cookiejar.Cookie
	for rows.Next() {
		var (
			name, value, host, path string
			expiry                  int64
			secure, httpOnly        int
		)
		if err := rows.Scan(&name, &value, &host, &path, &expiry, &secure, &httpOnly); err != nil {
			return nil, fmt.Errorf("cannot scan %s cookie row: %w", schema.browser, err)
		}
		c, err := cookiejar.NewCookie(cookiejar.Options{
			Name:        name,
			Value:       value,
			Domain:      host,
			Path:        path,
			Expire:      schema.unix(expiry),
			CrossDomain: strings.HasPrefix(host, "."),
			Secure:      secure != 0,
			HttpOnly:    httpOnly != 0,
		})
		if err != nil {
			return nil, fmt.Errorf("%s cookie %q: %w", schema.browser, name, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cannot iterate %s cookie rows: %w", schema.browser, err)
	}
	return out, nil
}
