// Package cookiejar implements a cookie jar that reads and writes the
// Netscape/Mozilla cookies.txt format and converts its records to and from
// HTTP header text.
//
// A Jar keeps one Cookie per name in insertion order. It can be loaded from a
// cookie file, fed with Set-Cookie response headers, saved back to disk and
// rendered as a Cookie request header or as a list of Set-Cookie lines.
//
// Jars are not safe for concurrent use. Callers sharing a Jar between
// goroutines must serialize Set, Header and Save themselves.
package cookiejar
