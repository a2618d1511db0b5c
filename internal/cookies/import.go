package cookies

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/warpdl/warpcookie/pkg/cookiejar"
	"golang.org/x/net/publicsuffix"
)

// AutoSource asks Import to look for the first installed browser store.
const AutoSource = "auto"

// ImportCookies reads the cookies for domain from the store at sourcePath.
// SQLite stores are read from a temporary copy. opts configure the jar used
// to read Netscape files.
func ImportCookies(sourcePath, domain string, opts ...cookiejar.Option) ([]*cookiejar.Cookie, *CookieSource, error) {
	domain, err := normalizeDomain(domain)
	if err != nil {
		return nil, nil, err
	}
	format, err := DetectFormat(sourcePath)
	if err != nil {
		return nil, nil, err
	}
	source := &CookieSource{Path: sourcePath, Format: format}

	var cookies []*cookiejar.Cookie
	switch format {
	case FormatFirefox:
		source.Browser = "Firefox"
		cookies, err = importSQLite(sourcePath, domain, ParseFirefox)
	case FormatChrome:
		source.Browser = "Chrome"
		cookies, err = importSQLite(sourcePath, domain, ParseChrome)
	case FormatNetscape:
		source.Browser = "Netscape"
		cookies, err = ParseNetscape(sourcePath, domain, opts...)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedStore, sourcePath)
	}
	if err != nil {
		return nil, nil, err
	}
	return cookies, source, nil
}

// normalizeDomain lowercases domain and drops a leading dot. Public
// suffixes such as "co.uk" are refused since they would select the cookies
// of every site below them. Single label hosts like "localhost" are allowed.
func normalizeDomain(domain string) (string, error) {
	d := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), ".")
	if d == "" {
		return "", nil
	}
	if ps, icann := publicsuffix.PublicSuffix(d); ps == d && (icann || strings.Contains(d, ".")) {
		return "", fmt.Errorf("%w: %s", ErrPublicSuffix, domain)
	}
	return d, nil
}

func importSQLite(sourcePath, domain string, parse func(string, string) ([]*cookiejar.Cookie, error)) ([]*cookiejar.Cookie, error) {
	tempDir, cleanup, err := SafeCopy(sourcePath)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return parse(filepath.Join(tempDir, filepath.Base(sourcePath)), domain)
}

// Import adds the cookies for domain found at sourcePath to j and returns the
// source and the number of cookies set. A sourcePath of AutoSource searches
// the installed browsers. Cookies sharing a name replace each other, so the
// count can exceed the growth of the jar.
func Import(j *cookiejar.Jar, sourcePath, domain string, opts ...cookiejar.Option) (*CookieSource, int, error) {
	var (
		cookies []*cookiejar.Cookie
		source  *CookieSource
		err     error
	)
	if sourcePath == AutoSource {
		if domain, err = normalizeDomain(domain); err != nil {
			return nil, 0, err
		}
		cookies, source, err = DetectBrowserCookies(domain)
	} else {
		cookies, source, err = ImportCookies(sourcePath, domain, opts...)
	}
	if err != nil {
		return nil, 0, err
	}
	for _, c := range cookies {
		if err := j.Set(c); err != nil {
			return nil, 0, err
		}
	}
	return source, len(cookies), nil
}
