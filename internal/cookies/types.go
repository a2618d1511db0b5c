package cookies

import "errors"

// CookieFormat identifies the format of a browser cookie store.
type CookieFormat int

const (
	// FormatUnknown means the cookie store format could not be detected.
	FormatUnknown CookieFormat = iota
	// FormatFirefox is the moz_cookies SQLite schema of Firefox and its forks.
	FormatFirefox
	// FormatChrome is the cookies SQLite schema of Chromium based browsers.
	// Only cookies stored unencrypted can be imported.
	FormatChrome
	// FormatNetscape is the tab-separated Netscape cookie file.
	FormatNetscape
)

func (f CookieFormat) String() string {
	switch f {
	case FormatFirefox:
		return "firefox"
	case FormatChrome:
		return "chrome"
	case FormatNetscape:
		return "netscape"
	default:
		return "unknown"
	}
}

// CookieSource describes where imported cookies were read from.
type CookieSource struct {
	// Path is the cookie store file.
	Path string
	// Format is the detected store format.
	Format CookieFormat
	// Browser is the detected browser name, "Netscape" for text files.
	Browser string
}

var (
	ErrUnsupportedStore = errors.New("unsupported cookie store")
	ErrEmptyStore       = errors.New("cookie store is empty")
	ErrStoreIsDir       = errors.New("cookie store path is a directory")
	ErrNoBrowserStore   = errors.New("no supported browser cookie store found")
	ErrPublicSuffix     = errors.New("domain is a public suffix")
)
