package cookiejar

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHeader_ParsesDirectives(t *testing.T) {
	j := New()
	err := j.Header("Set-Cookie: sid=abc123; Domain=example.com; Path=/app; expires=Wed, 15 Nov 2023 22:13:20 GMT; Secure; HttpOnly")
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	c, ok := j.Get("sid")
	if !ok {
		t.Fatal("cookie sid not stored")
	}
	want := time.Date(2023, 11, 15, 22, 13, 20, 0, time.UTC).Unix()
	if c.Value != "abc123" || c.Domain != "example.com" || c.Path != "/app" {
		t.Errorf("unexpected fields: %+v", c)
	}
	if c.Expire != want {
		t.Errorf("expected expire %d, got %d", want, c.Expire)
	}
	if !c.Secure || !c.HttpOnly {
		t.Errorf("expected Secure and HttpOnly, got %+v", c)
	}
}

func TestHeader_Defaults(t *testing.T) {
	j := New()
	if err := j.Header("Set-Cookie: lang=en; domain=example.org"); err != nil {
		t.Fatalf("Header: %v", err)
	}
	c, _ := j.Get("lang")
	if c.Path != "/" || c.Expire != 0 || c.Secure || c.HttpOnly {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestHeader_RejectsOtherHeaders(t *testing.T) {
	j := New()
	for _, h := range []string{"Not-A-Cookie: x=y", "Cookie: a=b", "", "set-cookie: a=b; Domain=c"} {
		if err := j.Header(h); err != nil {
			t.Errorf("Header(%q) should be a no-op, got %v", h, err)
		}
	}
	if j.Len() != 0 {
		t.Errorf("expected empty jar, got %d cookies", j.Len())
	}
}

func TestHeader_MissingFields(t *testing.T) {
	tests := []string{
		"Set-Cookie: sid=abc",
		"Set-Cookie: Domain=example.com; Path=/",
		"Set-Cookie: Secure; HttpOnly",
	}
	for _, h := range tests {
		j := New()
		if err := j.Header(h); !errors.Is(err, ErrInvalidHeader) {
			t.Errorf("Header(%q): expected ErrInvalidHeader, got %v", h, err)
		}
		if j.Len() != 0 {
			t.Errorf("Header(%q) inserted on failure", h)
		}
	}
}

func TestHeader_IgnoredDirectives(t *testing.T) {
	j := New()
	err := j.Header("Set-Cookie: sid=1; Domain=a.b; Max-Age=3600; SameSite=Lax; same-site=Strict; Priority; Partitioned")
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	if j.Len() != 1 {
		t.Fatalf("expected 1 cookie, got %d", j.Len())
	}
	c, _ := j.Get("sid")
	if c.Value != "1" || c.Expire != 0 {
		t.Errorf("ignored directives leaked into cookie: %+v", c)
	}
}

func TestHeader_ValueKeepsEquals(t *testing.T) {
	j := New()
	if err := j.Header("Set-Cookie: token=abc=123=xyz; Domain=a.b"); err != nil {
		t.Fatalf("Header: %v", err)
	}
	if c, _ := j.Get("token"); c.Value != "abc=123=xyz" {
		t.Errorf("expected value after first '=', got %q", c.Value)
	}
}

func TestHeader_EmptyValue(t *testing.T) {
	j := New()
	if err := j.Header("Set-Cookie: cleared=; Domain=a.b"); err != nil {
		t.Fatalf("Header: %v", err)
	}
	if c, ok := j.Get("cleared"); !ok || c.Value != "" {
		t.Errorf("expected empty-valued cookie, got %+v", c)
	}
}

func TestHeader_DomainNamedCookieCollides(t *testing.T) {
	j := New()
	err := j.Header("Set-Cookie: Domain=cookie-value; Domain=example.com")
	if !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("a cookie named Domain is read as the attribute, expected ErrInvalidHeader, got %v", err)
	}
}

func TestHeader_UnparseableExpires(t *testing.T) {
	j := New()
	if err := j.Header("Set-Cookie: a=b; Domain=c.d; expires=someday"); err != nil {
		t.Fatalf("Header: %v", err)
	}
	if c, _ := j.Get("a"); c.Expire != 0 {
		t.Errorf("expected session cookie for bad date, got %d", c.Expire)
	}
}

func TestHeader_NetscapeDashedDate(t *testing.T) {
	j := New()
	if err := j.Header("Set-Cookie: a=b; Domain=c.d; Expires=Wed, 15-Nov-2023 22:13:20 GMT"); err != nil {
		t.Fatalf("Header: %v", err)
	}
	want := time.Date(2023, 11, 15, 22, 13, 20, 0, time.UTC).Unix()
	if c, _ := j.Get("a"); c.Expire != want {
		t.Errorf("expected %d, got %d", want, c.Expire)
	}
}

func TestHeader_LongYearExpires(t *testing.T) {
	tests := []struct {
		header string
		want   int64
	}{
		{"Set-Cookie: a=b; Domain=c.d; expires=Sat, 01 Jan 10000 00:00:00 GMT", 253402300800},
		{"Set-Cookie: a=b; Domain=c.d; expires=Fri, 31 Dec 9999 23:59:59 GMT", 253402300799},
	}
	for _, tt := range tests {
		j := New()
		if err := j.Header(tt.header); err != nil {
			t.Fatalf("Header(%q): %v", tt.header, err)
		}
		if c, _ := j.Get("a"); c.Expire != tt.want {
			t.Errorf("%q: expected expire %d, got %d", tt.header, tt.want, c.Expire)
		}
	}
}

func TestHeader_ExplicitEmptyPath(t *testing.T) {
	j := New()
	if err := j.Header("Set-Cookie: a=b; Domain=c.d; Path="); err != nil {
		t.Fatalf("Header: %v", err)
	}
	if c, _ := j.Get("a"); c.Path != "" {
		t.Errorf("expected empty path to be kept, got %q", c.Path)
	}

	j = New()
	if err := j.Header("Set-Cookie: a=b; Domain=c.d"); err != nil {
		t.Fatalf("Header: %v", err)
	}
	if c, _ := j.Get("a"); c.Path != "/" {
		t.Errorf("expected default path, got %q", c.Path)
	}
}

func TestResponseHeaders_RoundTrip(t *testing.T) {
	cookies, err := FromCookies([]*Cookie{
		mustCookie(t, Options{Name: "test", Value: "testValue", Domain: "horatius.pro"}),
		mustCookie(t, Options{Name: "test2", Value: "defaultValue", HttpOnly: true, Domain: "google.com"}),
		mustCookie(t, Options{Name: "test3", Value: "v", Secure: true, Expire: 1700000000, Domain: "a.b", Path: "/p"}),
		mustCookie(t, Options{Name: "millis", Value: "v", Expire: int64(1700000000000), Domain: "a.b"}),
		mustCookie(t, Options{Name: "year10000", Value: "v", Expire: int64(253402300800), Domain: "a.b"}),
	})
	if err != nil {
		t.Fatalf("FromCookies: %v", err)
	}

	headers := cookies.ResponseHeaders()
	if len(headers) != cookies.Len() {
		t.Fatalf("expected %d headers, got %d", cookies.Len(), len(headers))
	}
	parsed := New()
	for _, h := range headers {
		if err := parsed.Header(h); err != nil {
			t.Fatalf("Header(%q): %v", h, err)
		}
	}

	for name, orig := range cookies.All() {
		got, ok := parsed.Get(name)
		if !ok {
			t.Fatalf("cookie %q lost in round trip", name)
		}
		if got.Value != orig.Value || got.Expire != orig.Expire || got.HttpOnly != orig.HttpOnly {
			t.Errorf("%s: expected %+v, got %+v", name, orig, got)
		}
		if got.Secure != orig.Secure || got.Domain != orig.Domain || got.Path != orig.Path {
			t.Errorf("%s: attributes differ: expected %+v, got %+v", name, orig, got)
		}
	}
}

func TestRequestHeader(t *testing.T) {
	data := [][2]string{{"test", "value"}, {"data", "sample"}}
	j := New()
	for _, d := range data {
		_ = j.Set(mustCookie(t, Options{Name: d[0], Value: d[1], Domain: "foo.bar"}))
	}

	header := j.RequestHeader()
	if header != "Cookie: test=value; data=sample" {
		t.Fatalf("unexpected request header %q", header)
	}

	pairs := strings.Split(strings.TrimPrefix(header, "Cookie: "), "; ")
	if len(pairs) != len(data) {
		t.Fatalf("expected %d pairs, got %d", len(data), len(pairs))
	}
	for i, p := range pairs {
		name, value, _ := strings.Cut(p, "=")
		if name != data[i][0] || value != data[i][1] {
			t.Errorf("pair %d: expected %v, got %s=%s", i, data[i], name, value)
		}
	}
}

func TestRequestHeader_Empty(t *testing.T) {
	if got := New().RequestHeader(); got != "Cookie: " {
		t.Errorf("expected bare prefix for empty jar, got %q", got)
	}
}
