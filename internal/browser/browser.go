// Package browser names the WebDriver browsers textwire knows about and
// builds the W3C capabilities a session for them is started with.
//
// Type travels through configuration as its canonical text ("chrome",
// "firefox") via serde.Text.
package browser

import (
	"fmt"
	"slices"
)

// Type identifies a WebDriver browser.
type Type int

const (
	Chrome Type = iota
	Firefox
)

// Types lists every browser type.
var Types = []Type{Chrome, Firefox}

// String returns the canonical text of t.
func (t Type) String() string {
	switch t {
	case Chrome:
		return "chrome"
	case Firefox:
		return "firefox"
	default:
		return fmt.Sprintf("browser.Type(%d)", int(t))
	}
}

// ParseText parses canonical browser text. Matching is exact: no case
// folding and no trimming.
func (Type) ParseText(s string) (Type, error) {
	for _, t := range Types {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown browser %q: must be chrome or firefox", s)
}

// chromeArgs disable background work, crash reporting and first-run UI
// so automated sessions start quiet and reproducible.
var chromeArgs = []string{
	"--disable-background-networking",
	"--disable-background-timer-throttling",
	"--disable-backgrounding-occluded-windows",
	"--disable-breakpad",
	"--disable-client-side-phishing-detection",
	"--disable-default-apps",
	"--disable-dev-shm-usage",
	"--disable-extensions",
	"--disable-hang-monitor",
	"--disable-ipc-flooding-protection",
	"--disable-popup-blocking",
	"--disable-prompt-on-repost",
	"--disable-renderer-backgrounding",
	"--disable-sync",
	"--metrics-recording-only",
	"--safebrowsing-disable-auto-update",
	"--disable-gpu",
	"--enable-automation=false",
	"--use-mock-keychain",
	"--disable-crash-reporting",
	"--disable-features=site-per-process,Translate,BlinkGenPropertyTrees",
	"--enable-features=NetworkService,NetworkServiceInProcess",
	"--force-color-profile=srgb",
	"--password-store=basic",
	"--no-first-run",
	"--no-default-browser-check",
	"--disk-cache-dir=/tmp",
	"--user-data-dir=/tmp",
	"--crash-dumps-dir=/tmp",
}

// OptionsKey returns the vendor capability key for t.
func OptionsKey(t Type) string {
	if t == Firefox {
		return "moz:firefoxOptions"
	}
	return "goog:chromeOptions"
}

// Args returns the command-line arguments a session of t is launched
// with. "--headless" is appended last when requested.
func Args(t Type, headless bool) []string {
	var args []string
	if t == Chrome {
		args = slices.Clone(chromeArgs)
	}
	if headless {
		args = append(args, "--headless")
	}
	if args == nil {
		args = []string{}
	}
	return args
}

// Capabilities returns the W3C capabilities map for a session of t:
// a single vendor options object holding the argument list.
func Capabilities(t Type, headless bool) map[string]any {
	return map[string]any{
		OptionsKey(t): map[string]any{
			"args": Args(t, headless),
		},
	}
}
