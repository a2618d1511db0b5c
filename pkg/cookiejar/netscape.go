package cookiejar

import (
	"fmt"
	"strconv"
	"strings"
)

// netscapeFields is the number of tab-separated columns in a cookie line.
const netscapeFields = 7

// fileHeader returns the comment block that opens every saved cookie file.
func fileHeader(generator string) string {
	return "# Netscape HTTP Cookie File\n" +
		"# https://curl.haxx.se/docs/http-cookies.html\n" +
		"# This file was generated by " + generator + "! Edit at your own risk\n\n"
}

// Load reads the Netscape cookie file at path into a new jar bound to it.
// It returns ErrFileNotFound if the file does not exist. Lines that do not
// have exactly seven tab-separated fields, comments and blank lines among
// them, are skipped.
func Load(path string, opts ...Option) (*Jar, error) {
	j := New(opts...)
	j.file = path

	ok, err := j.store.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat cookie file %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	data, err := j.store.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read cookie file %s: %w", path, err)
	}
	if err := j.parse(string(data)); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Jar) parse(content string) error {
	for i, line := range strings.Split(content, "\n") {
		c, ok := parseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, "#") {
				j.log.Warning("skipping malformed cookie line %d", i+1)
			}
			continue
		}
		if err := j.Set(c); err != nil {
			return err
		}
	}
	return nil
}

// parseLine decodes one cookie file line. It reports false for lines that do
// not split into exactly seven fields.
func parseLine(line string) (*Cookie, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != netscapeFields {
		return nil, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	domain := fields[0]
	httpOnly := false
	if strings.HasPrefix(domain, httpOnlyPrefix) {
		httpOnly = true
		domain = domain[len(httpOnlyPrefix):]
	}

	c, err := NewCookie(Options{
		Domain:      domain,
		CrossDomain: fields[1] == flagTrue,
		Path:        fields[2],
		Secure:      fields[3] == flagTrue,
		Expire:      parseExpireColumn(fields[4]),
		Name:        fields[5],
		Value:       fields[6],
		HttpOnly:    httpOnly,
	})
	if err != nil {
		return nil, false
	}
	// An explicitly empty path column stays empty.
	c.Path = fields[2]
	return c, true
}

// parseExpireColumn reads the expiry column. Decimal values are truncated
// and anything that is not a number becomes 0.
func parseExpireColumn(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if n, err := truncFloat(f); err == nil {
			return n
		}
	}
	return 0
}

// Bytes returns the cookie file content Save writes.
func (j *Jar) Bytes() []byte {
	var b strings.Builder
	b.WriteString(fileHeader(j.generator))
	for _, c := range j.All() {
		b.WriteString(c.FileLine())
	}
	// Only line breaks are trimmed: a trailing tab is the empty value column.
	return []byte(strings.TrimRight(b.String(), "\r\n") + "\n")
}

// Save writes the jar to path, or to the bound file when path is empty.
// It returns ErrNotFileBacked when neither is available.
func (j *Jar) Save(path string) error {
	if path == "" {
		path = j.file
	}
	if path == "" {
		return ErrNotFileBacked
	}
	if err := j.store.WriteFile(path, j.Bytes()); err != nil {
		return fmt.Errorf("cannot write cookie file %s: %w", path, err)
	}
	return nil
}
