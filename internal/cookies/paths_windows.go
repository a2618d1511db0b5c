//go:build windows

package cookies

import (
	"os"
	"path/filepath"
)

// getBrowserCookiePathsForEnv returns the browser specs for the given
// LOCALAPPDATA and APPDATA values. Firefox profiles live in the roaming one.
func getBrowserCookiePathsForEnv(localAppData, appData string) []browserSpec {
	return []browserSpec{
		firefoxSpec("Firefox", filepath.Join(appData, "Mozilla", "Firefox")),
		firefoxSpec("LibreWolf", filepath.Join(appData, "LibreWolf")),
		chromiumSpec("Chrome", filepath.Join(localAppData, "Google", "Chrome", "User Data")),
		chromiumSpec("Chromium", filepath.Join(localAppData, "Chromium", "User Data")),
		chromiumSpec("Edge", filepath.Join(localAppData, "Microsoft", "Edge", "User Data")),
		chromiumSpec("Brave", filepath.Join(localAppData, "BraveSoftware", "Brave-Browser", "User Data")),
	}
}

func getBrowserCookiePaths() []browserSpec {
	return getBrowserCookiePathsForEnv(os.Getenv("LOCALAPPDATA"), os.Getenv("APPDATA"))
}
