package cookies

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/warpdl/warpcookie/pkg/cookiejar"
)

// browserSpec lists where one browser may keep its cookies.
type browserSpec struct {
	Name string
	// CookiePaths are direct cookie database candidates, first match wins.
	CookiePaths []string
	// ProfilesIniPaths are Firefox style profiles.ini candidates. The
	// cookies.sqlite of the default profile is used.
	ProfilesIniPaths []string
}

func firefoxSpec(name string, dirs ...string) browserSpec {
	spec := browserSpec{Name: name}
	for _, d := range dirs {
		spec.ProfilesIniPaths = append(spec.ProfilesIniPaths, filepath.Join(d, "profiles.ini"))
	}
	return spec
}

// chromiumSpec returns the Default profile candidates under a Chromium
// user data directory. Newer releases keep the file under Network.
func chromiumSpec(name, userData string) browserSpec {
	base := filepath.Join(userData, "Default")
	return browserSpec{
		Name: name,
		CookiePaths: []string{
			filepath.Join(base, "Network", "Cookies"),
			filepath.Join(base, "Cookies"),
		},
	}
}

// candidates returns the cookie files of spec that exist on disk.
func (s browserSpec) candidates() []string {
	paths := s.CookiePaths
	for _, ini := range s.ProfilesIniPaths {
		if dir := parseProfilesIni(ini); dir != "" {
			paths = append(paths, filepath.Join(dir, "cookies.sqlite"))
		}
	}
	var out []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

type iniSection struct {
	name string
	keys map[string]string
}

func readIniSections(path string) ([]iniSection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sections []iniSection
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			name := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			sections = append(sections, iniSection{name: name, keys: map[string]string{}})
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok || len(sections) == 0 {
			continue
		}
		k = strings.TrimSpace(k)
		if _, dup := sections[len(sections)-1].keys[k]; !dup {
			sections[len(sections)-1].keys[k] = strings.TrimSpace(v)
		}
	}
	return sections, scanner.Err()
}

// parseProfilesIni returns the default profile directory named by a
// profiles.ini file, or "" when none can be found. An [Install*] Default key
// wins over a [Profile*] section marked Default=1.
func parseProfilesIni(iniPath string) string {
	sections, err := readIniSections(iniPath)
	if err != nil {
		return ""
	}
	resolve := func(p string) string {
		p = filepath.FromSlash(p)
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(filepath.Dir(iniPath), p)
	}
	for _, s := range sections {
		if strings.HasPrefix(s.name, "Install") && s.keys["Default"] != "" {
			return resolve(s.keys["Default"])
		}
	}
	for _, s := range sections {
		if strings.HasPrefix(s.name, "Profile") && s.keys["Default"] == "1" && s.keys["Path"] != "" {
			return resolve(s.keys["Path"])
		}
	}
	return ""
}

// detectWithSpecs imports from the first store of specs that can be read.
func detectWithSpecs(domain string, specs []browserSpec) ([]*cookiejar.Cookie, *CookieSource, error) {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
		for _, path := range spec.candidates() {
			imported, source, err := ImportCookies(path, domain)
			if err != nil {
				continue
			}
			source.Browser = spec.Name
			return imported, source, nil
		}
	}
	return nil, nil, fmt.Errorf("%w (tried %s)", ErrNoBrowserStore, strings.Join(names, ", "))
}

// DetectBrowserCookies imports the cookies for domain from the first browser
// found, in the order Firefox, LibreWolf, Chrome, Chromium, Edge, Brave.
func DetectBrowserCookies(domain string) ([]*cookiejar.Cookie, *CookieSource, error) {
	return detectWithSpecs(domain, getBrowserCookiePaths())
}
