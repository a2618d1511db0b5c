package cookiejar

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	flagTrue  = "TRUE"
	flagFalse = "FALSE"

	// httpOnlyPrefix marks HttpOnly cookies in the domain column of a cookie file.
	httpOnlyPrefix = "#HttpOnly_"

	defaultPath = "/"
)

// Options holds the fields used to build a Cookie.
type Options struct {
	// Name is the cookie name. It becomes the jar key and cannot change later.
	Name string
	// Value is the cookie value, possibly empty.
	Value string
	// Domain is the host the cookie belongs to.
	Domain string
	// Path is the cookie path scope. Empty means "/".
	Path string
	// Expire is either nil (session cookie), an integer-like value or a
	// time.Time. Integers are stored unchanged, times as Unix seconds.
	Expire any
	// HttpOnly marks the cookie as unavailable to scripts.
	HttpOnly bool
	// CrossDomain is the "include subdomains" flag of the cookie file.
	CrossDomain bool
	// Secure restricts the cookie to HTTPS.
	Secure bool
}

// Cookie is a single cookie record of a Jar.
//
// All fields but the name may be changed directly by the holder. The name is
// fixed at construction because the jar is keyed by it.
type Cookie struct {
	name string

	Value       string
	Domain      string
	Path        string
	Expire      int64 // 0 means session cookie
	HttpOnly    bool
	CrossDomain bool
	Secure      bool
}

// NewCookie validates opts and builds a Cookie from them.
// It returns ErrInvalidExpire if opts.Expire has an unsupported type.
func NewCookie(opts Options) (*Cookie, error) {
	expire, err := normalizeExpire(opts.Expire)
	if err != nil {
		return nil, err
	}
	path := opts.Path
	if path == "" {
		path = defaultPath
	}
	return &Cookie{
		name:        opts.Name,
		Value:       opts.Value,
		Domain:      opts.Domain,
		Path:        path,
		Expire:      expire,
		HttpOnly:    opts.HttpOnly,
		CrossDomain: opts.CrossDomain,
		Secure:      opts.Secure,
	}, nil
}

// normalizeExpire converts the accepted expiry inputs to the stored integer.
func normalizeExpire(v any) (int64, error) {
	switch e := v.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(e), nil
	case int8:
		return int64(e), nil
	case int16:
		return int64(e), nil
	case int32:
		return int64(e), nil
	case int64:
		return e, nil
	case uint:
		return uintExpire(uint64(e))
	case uint8:
		return int64(e), nil
	case uint16:
		return int64(e), nil
	case uint32:
		return int64(e), nil
	case uint64:
		return uintExpire(e)
	case float32:
		return truncFloat(float64(e))
	case float64:
		return truncFloat(e)
	case string:
		return parseExpireString(e)
	case time.Time:
		return unixOrZero(e), nil
	case *time.Time:
		if e == nil {
			return 0, nil
		}
		return unixOrZero(*e), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidExpire, v)
	}
}

func uintExpire(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, ErrInvalidExpire
	}
	return int64(u), nil
}

func truncFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidExpire
	}
	return int64(f), nil
}

func parseExpireString(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidExpire, s)
	}
	return truncFloat(f)
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// Name returns the cookie name.
func (c *Cookie) Name() string {
	return c.name
}

// CrossDomainFlag returns the cookie file spelling of CrossDomain.
func (c *Cookie) CrossDomainFlag() string {
	return boolFlag(c.CrossDomain)
}

// SecureFlag returns the cookie file spelling of Secure.
func (c *Cookie) SecureFlag() string {
	return boolFlag(c.Secure)
}

func boolFlag(b bool) string {
	if b {
		return flagTrue
	}
	return flagFalse
}

// FileLine encodes the cookie as one newline-terminated cookie file line.
func (c *Cookie) FileLine() string {
	return c.String() + "\n"
}

// String returns the cookie file line without its newline.
func (c *Cookie) String() string {
	domain := c.Domain
	if c.HttpOnly {
		domain = httpOnlyPrefix + domain
	}
	return strings.Join([]string{
		domain,
		c.CrossDomainFlag(),
		c.Path,
		c.SecureFlag(),
		strconv.FormatInt(c.Expire, 10),
		c.name,
		c.Value,
	}, "\t")
}

// RequestToken returns the "name=value; " fragment of a Cookie request header.
func (c *Cookie) RequestToken() string {
	return c.name + "=" + c.Value + "; "
}

// ResponseHeader returns the cookie as a full Set-Cookie header line.
// Header parses it back into an equal name, value, expiry and HttpOnly flag.
func (c *Cookie) ResponseHeader() string {
	var b strings.Builder
	b.WriteString("Set-Cookie: ")
	b.WriteString(c.name + "=" + c.Value + "; ")
	b.WriteString("Domain=" + c.Domain + "; ")
	b.WriteString("Path=" + c.Path + "; ")
	b.WriteString("expires=" + time.Unix(c.Expire, 0).UTC().Format(http.TimeFormat) + "; ")

	var flags []string
	if c.Secure {
		flags = append(flags, " Secure")
	}
	if c.HttpOnly {
		flags = append(flags, " HttpOnly")
	}
	b.WriteString(strings.Join(flags, "; "))
	return b.String()
}

// Is reports whether c and other hold the same field values.
func (c *Cookie) Is(other *Cookie) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// Clone returns an independent copy of c.
func (c *Cookie) Clone() *Cookie {
	cp := *c
	return &cp
}
