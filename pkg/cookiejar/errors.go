package cookiejar

import "errors"

var (
	// ErrInvalidExpire is returned when a cookie expiry is neither integer-like nor a time.
	ErrInvalidExpire = errors.New("cookie expire must be a time or an integer")
	// ErrInvalidCookie is returned when a nil cookie is handed to a jar.
	ErrInvalidCookie = errors.New("cookie passed to jar is incorrect")
	// ErrFileNotFound is returned when loading a cookie file that does not exist.
	ErrFileNotFound = errors.New("cookie file doesn't exist")
	// ErrNotFileBacked is returned when saving a jar with no target path.
	ErrNotFileBacked = errors.New("jar is not bound to a file and no path was given")
	// ErrInvalidHeader is returned when a Set-Cookie header lacks a name, value or domain.
	ErrInvalidHeader = errors.New("wrong header passed for creating cookie")
)
