//go:build android

package oslocale

import (
	"runtime"

	"github.com/napalu/oslocale/env"
)

// NewPlatformProvider returns the provider compiled in for this target. Android
// locales live in the application runtime, so lookups always fail here; hosts
// can pass their own Provider with WithProvider.
func NewPlatformProvider(_ env.Resolver, _ ...string) Provider {
	return unsupportedProvider{platform: runtime.GOOS}
}
