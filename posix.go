package oslocale

import (
	"strings"

	"github.com/napalu/oslocale/env"
	"github.com/napalu/oslocale/errs"
)

// DefaultPosixVariable is the environment variable holding the process locale.
const DefaultPosixVariable = "LANG"

// PosixProvider reads the locale from environment variables. It is the platform
// provider on Unix-like systems other than Apple's and Android, and can be used
// anywhere else through WithProvider.
type PosixProvider struct {
	// Resolver defaults to the process environment.
	Resolver env.Resolver
	// Variables are consulted in order; the first one set to a non-empty value
	// is used. The last variable is used even when empty. Defaults to LANG.
	Variables []string
}

// NewPosixProvider returns a PosixProvider reading the given variables from r.
func NewPosixProvider(r env.Resolver, variables ...string) *PosixProvider {
	return &PosixProvider{
		Resolver:  r,
		Variables: variables,
	}
}

// Locale returns the normalized value of the first variable set to a non-empty
// value, matching the way the C library skips empty LC_* variables. The last
// variable is honoured even when empty, so a lone LANG="" is reported as not
// compliant. A variable set to "C" yields DefaultLocale without normalization.
// No variable set yields errs.ErrLookupFailed.
func (p *PosixProvider) Locale() (string, error) {
	r := p.Resolver
	if r == nil {
		r = &env.DefaultEnvResolver{}
	}

	variables := p.Variables
	if len(variables) == 0 {
		variables = []string{DefaultPosixVariable}
	}

	last := len(variables) - 1
	for i, name := range variables {
		raw, ok := r.Lookup(name)
		if !ok || (raw == "" && i < last) {
			continue
		}

		if raw == posixDefaultLocale {
			return DefaultLocale, nil
		}

		return NormalizePosix(raw)
	}

	return "", errs.LookupFailed(errs.ErrEnvVarUnset.WithArgs(strings.Join(variables, ", ")))
}

func (p *PosixProvider) String() string {
	return "posix"
}
