package cookiejar

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/warpdl/warpcookie/pkg/logger"
)

func TestReadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Set-Cookie", "session=secret-token-123; Domain=example.com; Path=/; HttpOnly")
		w.Header().Add("Set-Cookie", "nodomain=1; Path=/")
		w.Header().Add("Set-Cookie", "lang=en; Domain=example.com")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	mock := logger.NewMockLogger()
	j := New(WithLogger(mock))
	err = j.ReadResponse(resp)
	if !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("expected ErrInvalidHeader for the header without domain, got %v", err)
	}
	if j.Len() != 2 {
		t.Fatalf("expected 2 cookies stored, got %d", j.Len())
	}
	if c, _ := j.Get("session"); !c.HttpOnly || c.Value != "secret-token-123" {
		t.Errorf("unexpected session cookie: %+v", c)
	}
	if len(mock.WarningCalls) != 1 {
		t.Errorf("expected 1 warning, got %v", mock.WarningCalls)
	}
}

func TestAddRequestCookies(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Cookie")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	j, _ := FromCookies([]*Cookie{
		mustCookie(t, Options{Domain: "example.com", Name: "session", Value: "abc"}),
		mustCookie(t, Options{Domain: "other.org", Name: "user", Value: "xyz"}),
	})
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	j.AddRequestCookies(req)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	resp.Body.Close()

	if got != "session=abc; user=xyz" {
		t.Errorf("unexpected Cookie header %q", got)
	}
}

func TestAddRequestCookies_EmptyJar(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.Header.Set("Cookie", "keep=1")
	New().AddRequestCookies(req)
	if req.Header.Get("Cookie") != "keep=1" {
		t.Errorf("empty jar must not touch the request, got %q", req.Header.Get("Cookie"))
	}
}
