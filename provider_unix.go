//go:build unix && !darwin && !android

package oslocale

import "github.com/napalu/oslocale/env"

// NewPlatformProvider returns the provider compiled in for this target. On
// Unix-like systems it reads the given variables from r.
func NewPlatformProvider(r env.Resolver, variables ...string) Provider {
	return NewPosixProvider(r, variables...)
}
