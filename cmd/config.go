package cmd

const DESCRIPTION = `
warpcookie keeps a Netscape cookie file (the cookies.txt format used by
curl and wget) and converts it to and from HTTP Cookie and Set-Cookie
headers. Cookies can be set by hand, read from captured Set-Cookie
headers or imported from an installed browser.
`

const (
	ShowDescription = `The show command prints every cookie of the jar as a
line of the cookie file, in the order they were added.

Example:
        warpcookie show
        warpcookie --jar ./session.txt ls

`
	SetDescription = `The set command adds cookies to the jar, replacing any
cookie with the same name. The jar is created if it does not
exist yet. Every cookie gets the same domain, path and flags.

Example:
        warpcookie set --domain .example.com sid=abc123
        warpcookie set -d example.com --secure -c a=1 -c b=2

`
	DeleteDescription = `The delete command removes the named cookies from the jar.

Example:
        warpcookie delete sid theme

`
	IngestDescription = `The ingest command reads "Set-Cookie:" header lines from
the given files, or from stdin when none is given, and stores
the cookie each one describes. Other lines are ignored and
headers without a domain are reported and skipped. The header
name is case-sensitive: HTTP/2 responses print "set-cookie:",
so ask curl for HTTP/1.1.

Example:
        curl --http1.1 -sI https://example.com | warpcookie ingest
        warpcookie ingest headers.txt

`
	RequestDescription = `The request command prints the jar as a single Cookie
request header.

Example:
        warpcookie request

`
	ResponseDescription = `The response command prints one Set-Cookie response
header per cookie of the jar.

Example:
        warpcookie response

`
	ImportDescription = `The import command copies cookies from a browser cookie
store into the jar. Firefox and Chromium SQLite databases and
Netscape cookie files are supported; encrypted Chromium cookies
are skipped. Use "auto" to pick the first installed browser.

Example:
        warpcookie import --from auto --domain example.com
        warpcookie import --from ~/.mozilla/firefox/x.default/cookies.sqlite

`
)
