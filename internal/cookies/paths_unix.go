//go:build unix

package cookies

import (
	"os"
	"path/filepath"
	"runtime"
)

// getBrowserCookiePathsForHome returns the browser specs below homeDir.
func getBrowserCookiePathsForHome(homeDir string) []browserSpec {
	return specsForHome(homeDir, runtime.GOOS == "darwin")
}

func specsForHome(home string, darwin bool) []browserSpec {
	if darwin {
		support := filepath.Join(home, "Library", "Application Support")
		return []browserSpec{
			firefoxSpec("Firefox", filepath.Join(support, "Firefox")),
			firefoxSpec("LibreWolf", filepath.Join(support, "librewolf")),
			chromiumSpec("Chrome", filepath.Join(support, "Google", "Chrome")),
			chromiumSpec("Chromium", filepath.Join(support, "Chromium")),
			chromiumSpec("Edge", filepath.Join(support, "Microsoft Edge")),
			chromiumSpec("Brave", filepath.Join(support, "BraveSoftware", "Brave-Browser")),
		}
	}
	config := filepath.Join(home, ".config")
	return []browserSpec{
		firefoxSpec("Firefox",
			filepath.Join(home, ".mozilla", "firefox"),
			filepath.Join(home, "snap", "firefox", "common", ".mozilla", "firefox"),
		),
		firefoxSpec("LibreWolf", filepath.Join(home, ".librewolf")),
		chromiumSpec("Chrome", filepath.Join(config, "google-chrome")),
		chromiumSpec("Chromium", filepath.Join(config, "chromium")),
		chromiumSpec("Edge", filepath.Join(config, "microsoft-edge")),
		chromiumSpec("Brave", filepath.Join(config, "BraveSoftware", "Brave-Browser")),
	}
}

func getBrowserCookiePaths() []browserSpec {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return getBrowserCookiePathsForHome(home)
}
