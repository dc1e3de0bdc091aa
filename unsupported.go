package oslocale

import "github.com/napalu/oslocale/errs"

// unsupportedProvider is compiled in for targets without a locale facility
// owned by this package. Android needs the host application's runtime.
type unsupportedProvider struct {
	platform string
}

func (p unsupportedProvider) Locale() (string, error) {
	return "", errs.LookupFailed(errs.ErrUnsupportedPlatform.WithArgs(p.platform))
}

func (p unsupportedProvider) String() string {
	return "unsupported"
}
