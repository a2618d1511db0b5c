package cookiejar

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	setCookiePrefix = "Set-Cookie:"
	requestPrefix   = "Cookie: "
)

// pendingCookie accumulates the fields of a Set-Cookie header while it is
// being scanned.
type pendingCookie struct {
	opts    Options
	hasPair bool
	hasDom  bool
	hasPath bool
}

// directives routes normalized Set-Cookie attribute names to their handler.
// Keys missing from the table are the cookie's own name and value, so a
// cookie called "Domain" is read as the Domain attribute.
var directives = map[string]func(p *pendingCookie, value string){
	"domain": func(p *pendingCookie, value string) {
		p.opts.Domain = value
		p.hasDom = true
	},
	"path": func(p *pendingCookie, value string) {
		p.opts.Path = value
		p.hasPath = true
	},
	"expires": func(p *pendingCookie, value string) {
		// Unparseable dates leave a session cookie.
		p.opts.Expire = nil
		if t, ok := parseHTTPDate(value); ok {
			p.opts.Expire = t
		}
	},
	"samesite": func(*pendingCookie, string) {},
	"maxage":   func(*pendingCookie, string) {},
}

// bareFlags maps value-less attributes to their handler. Unknown ones are dropped.
var bareFlags = map[string]func(p *pendingCookie){
	"Secure":   func(p *pendingCookie) { p.opts.Secure = true },
	"HttpOnly": func(p *pendingCookie) { p.opts.HttpOnly = true },
}

// netscapeDate is the dashed date layout of the original Netscape cookie draft.
const netscapeDate = "Mon, 02-Jan-2006 15:04:05 MST"

func parseHTTPDate(value string) (time.Time, bool) {
	if t, err := http.ParseTime(value); err == nil {
		return t, true
	}
	if t, err := time.Parse(netscapeDate, value); err == nil {
		return t, true
	}
	return parseLongYearDate(value)
}

// parseLongYearDate reads an http.TimeFormat date whose year is not four
// digits long, as written for expiries past 9999.
func parseLongYearDate(value string) (time.Time, bool) {
	fields := strings.Fields(value)
	if len(fields) != 6 || fields[5] != "GMT" {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return time.Time{}, false
	}
	// The Gregorian calendar repeats every 400 years, weekdays included.
	base := 2000 + (year%400+400)%400
	fields[3] = strconv.Itoa(base)
	t, err := time.Parse(http.TimeFormat, strings.Join(fields, " "))
	if err != nil {
		return time.Time{}, false
	}
	return t.AddDate(year-base, 0, 0), true
}

func normalizeDirective(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "-", "")
}

// IsSetCookie reports whether header is a Set-Cookie header line.
func IsSetCookie(header string) bool {
	return strings.HasPrefix(strings.TrimSpace(header), setCookiePrefix)
}

// Header parses one "Set-Cookie: ..." header line and stores the cookie it
// describes. Lines of any other header are ignored. It returns
// ErrInvalidHeader, leaving the jar untouched, if the line does not carry a
// name, a value and a Domain attribute.
func (j *Jar) Header(header string) error {
	if !IsSetCookie(header) {
		return nil
	}
	c, err := parseSetCookie(strings.TrimSpace(header)[len(setCookiePrefix):])
	if err != nil {
		return err
	}
	return j.Set(c)
}

func parseSetCookie(attrs string) (*Cookie, error) {
	var p pendingCookie
	for _, part := range strings.Split(attrs, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		key = strings.TrimSpace(key)
		if !found {
			if set, ok := bareFlags[key]; ok {
				set(&p)
			}
			continue
		}
		value = strings.TrimSpace(value)
		if handle, ok := directives[normalizeDirective(key)]; ok {
			handle(&p, value)
			continue
		}
		p.opts.Name = key
		p.opts.Value = value
		p.hasPair = true
	}
	if !p.hasPair || !p.hasDom {
		return nil, ErrInvalidHeader
	}
	c, err := NewCookie(p.opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if p.hasPath {
		c.Path = p.opts.Path
	}
	return c, nil
}

// RequestHeader renders every cookie as a single "Cookie: " request header.
func (j *Jar) RequestHeader() string {
	var b strings.Builder
	b.WriteString(requestPrefix)
	for _, c := range j.All() {
		b.WriteString(c.RequestToken())
	}
	return trimTrailingSeparator(b.String())
}

// trimTrailingSeparator removes a final ';' and any whitespace after it.
func trimTrailingSeparator(s string) string {
	trimmed := strings.TrimRight(s, " \t\r\n")
	if !strings.HasSuffix(trimmed, ";") {
		return s
	}
	return strings.TrimSuffix(trimmed, ";")
}

// ResponseHeaders returns one Set-Cookie header line per cookie, in order.
// The lines are meant to be sent as separate headers.
func (j *Jar) ResponseHeaders() []string {
	headers := make([]string, 0, j.Len())
	for _, c := range j.All() {
		headers = append(headers, c.ResponseHeader())
	}
	return headers
}
