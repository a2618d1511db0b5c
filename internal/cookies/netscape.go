package cookies

import (
	"strings"

	"github.com/warpdl/warpcookie/pkg/cookiejar"
)

// ParseNetscape reads the unexpired cookies for domain from a Netscape cookie
// file. Malformed lines are reported to the logger given in opts.
func ParseNetscape(path, domain string, opts ...cookiejar.Option) ([]*cookiejar.Cookie, error) {
	j, err := cookiejar.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	now := nowFunc().Unix()
	var out []*cookiejar.Cookie
	for _, c := range j.All() {
		if !matchesDomain(c.Domain, domain) {
			continue
		}
		if c.Expire != 0 && c.Expire <= now {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// matchesDomain reports whether a cookie stored for host applies to domain,
// either exactly, through a leading dot or as a subdomain.
func matchesDomain(host, domain string) bool {
	if domain == "" {
		return true
	}
	host = strings.ToLower(host)
	domain = strings.ToLower(domain)
	return host == domain || host == "."+domain || strings.HasSuffix(host, "."+domain)
}
