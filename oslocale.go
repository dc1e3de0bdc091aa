// Package oslocale obtains the user's current locale from the operating system
// and returns it as a BCP 47 (IETF) language tag such as "en-US".
//
// Exactly one platform Provider is compiled in per target:
//
//   - Unix-like systems read the LANG environment variable and normalize values
//     such as "en_US.UTF-8" to "en-US". The POSIX default locale "C" maps to "en-US".
//   - Windows asks GetUserDefaultLocaleName, which already returns IETF names.
//   - macOS and iOS ask Foundation for the current locale identifier and replace
//     underscores with hyphens.
//
// Lookups are never cached: every call performs one environment read or one
// native call. Failures are reported as errs.ErrLookupFailed or
// errs.ErrNotIetfCompliant and are never fatal.
package oslocale

import (
	"fmt"

	"github.com/napalu/oslocale/env"
	"github.com/napalu/oslocale/errs"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// DefaultLocale is returned for the POSIX "C" locale, which the C standard
// defines as U.S. English.
const DefaultLocale = "en-US"

// Provider looks up a locale from one OS facility.
type Provider interface {
	// Locale returns the current locale as an IETF language tag.
	Locale() (string, error)
}

// Detector performs locale lookups through a Provider.
type Detector struct {
	provider  Provider
	resolver  env.Resolver
	variables []string
	logger    zerolog.Logger
}

// NewDetector returns a Detector using the platform provider.
func NewDetector() *Detector {
	d, _ := NewDetectorWith()
	return d
}

// Current returns the current locale of the process as an IETF language tag.
//
// On Unix, an unset LANG yields errs.ErrLookupFailed and a value that cannot be
// normalized yields errs.ErrNotIetfCompliant carrying the raw value. On Windows
// single-user systems the result may be the system default rather than a user
// choice.
func Current() (string, error) {
	return NewDetector().Detect()
}

// CurrentTag is like Current but parses the result into a language.Tag. A result
// that does not parse is reported as errs.ErrNotIetfCompliant.
func CurrentTag() (language.Tag, error) {
	return NewDetector().DetectTag()
}

// Detect performs a single lookup.
func (d *Detector) Detect() (string, error) {
	tag, err := d.provider.Locale()
	if err != nil {
		ev := d.logger.Debug().Str("provider", providerName(d.provider)).Err(err)
		if raw, ok := errs.Raw(err); ok {
			ev = ev.Str("raw", raw)
		}
		ev.Msg("locale lookup failed")
		return "", err
	}

	d.logger.Debug().
		Str("provider", providerName(d.provider)).
		Str("locale", tag).
		Msg("locale detected")

	return tag, nil
}

// DetectTag performs a single lookup and parses the result.
func (d *Detector) DetectTag() (language.Tag, error) {
	s, err := d.Detect()
	if err != nil {
		return language.Und, err
	}

	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, errs.ErrNotIetfCompliant.WithArgs(s).Wrap(err)
	}

	return tag, nil
}

// Provider returns the provider used by d.
func (d *Detector) Provider() Provider {
	return d.provider
}

func providerName(p Provider) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
