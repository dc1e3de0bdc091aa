//go:build !unix && !windows

package oslocale

import (
	"runtime"

	"github.com/napalu/oslocale/env"
)

// NewPlatformProvider returns the provider compiled in for this target, which
// has no locale facility.
func NewPlatformProvider(_ env.Resolver, _ ...string) Provider {
	return unsupportedProvider{platform: runtime.GOOS}
}
