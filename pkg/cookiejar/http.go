package cookiejar

import (
	"fmt"
	"net/http"
	"strings"
)

// AddRequestCookies sets the Cookie header of req to every cookie of the jar.
// No path, domain or Secure matching is done. An empty jar leaves req untouched.
func (j *Jar) AddRequestCookies(req *http.Request) {
	if j.Len() == 0 {
		return
	}
	value := strings.TrimPrefix(j.RequestHeader(), requestPrefix)
	req.Header.Set("Cookie", value)
}

// ReadResponse stores every Set-Cookie header of resp. Invalid headers are
// logged and skipped; the first error met is returned once all headers have
// been processed.
func (j *Jar) ReadResponse(resp *http.Response) error {
	var first error
	for i, v := range resp.Header.Values("Set-Cookie") {
		err := j.Header(setCookiePrefix + " " + v)
		if err == nil {
			continue
		}
		j.log.Warning("skipping Set-Cookie header %d: %v", i+1, err)
		if first == nil {
			first = fmt.Errorf("set-cookie header %d: %w", i+1, err)
		}
	}
	return first
}
