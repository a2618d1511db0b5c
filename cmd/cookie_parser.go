package cmd

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// cookiePair is one name=value argument of the set command.
type cookiePair struct {
	Name  string
	Value string
}

// parseCookieArgs splits "name=value" arguments. The value may be empty or
// contain further '=' characters; the name may not be empty.
func parseCookieArgs(args []string) ([]cookiePair, error) {
	pairs := make([]cookiePair, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(strings.TrimSpace(arg), "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid cookie format: %q (expected 'name=value')", arg)
		}
		pairs = append(pairs, cookiePair{Name: name, Value: value})
	}
	return pairs, nil
}

// parseExpireFlag turns the --expire value into a cookie expiry: an RFC 3339
// or HTTP date becomes a time, anything else is handed over as text and must
// be a number of seconds since the Unix epoch.
func parseExpireFlag(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := http.ParseTime(s); err == nil {
		return t
	}
	return s
}
