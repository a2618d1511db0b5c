// Package cookies imports browser cookie stores into a cookie jar. It reads
// Firefox cookies.sqlite files, the unencrypted part of Chromium Cookies
// databases and Netscape cookie files, and can look for the store of the
// first installed browser.
//
// SQLite stores are read from a temporary copy so that a running browser
// keeps its lock. Cookie values are never logged.
package cookies
