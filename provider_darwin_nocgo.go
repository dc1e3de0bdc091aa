//go:build darwin && !cgo

package oslocale

import (
	"os/exec"

	"github.com/napalu/oslocale/env"
)

// readAppleLocale is replaced in tests.
var readAppleLocale = func() ([]byte, error) {
	return exec.Command("defaults", "read", "-g", "AppleLocale").Output()
}

// NewPlatformProvider returns the provider compiled in for this target. Without
// cgo Foundation is unreachable, so the user defaults database is read instead.
func NewPlatformProvider(_ env.Resolver, _ ...string) Provider {
	return appleProvider{}
}

type appleProvider struct{}

func (appleProvider) Locale() (string, error) {
	return appleLocaleFromDefaults(readAppleLocale())
}

func (appleProvider) String() string {
	return "apple"
}
