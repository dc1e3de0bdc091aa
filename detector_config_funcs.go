package oslocale

import (
	"errors"

	"github.com/napalu/oslocale/env"
	"github.com/rs/zerolog"
)

// ConfigureDetectorFunc is used when defining Detector options
type ConfigureDetectorFunc func(d *Detector, err *error)

// NewDetectorWith allows initialization of a Detector using option functions. The
// Detector is nil when an option fails.
//
// Configuration example:
//
//	d, err := NewDetectorWith(
//		WithPosixVariables("LC_ALL", "LC_MESSAGES", "LANG"),
//		WithLogger(log.Logger))
func NewDetectorWith(configs ...ConfigureDetectorFunc) (*Detector, error) {
	d := &Detector{
		resolver:  &env.DefaultEnvResolver{},
		variables: []string{DefaultPosixVariable},
		logger:    Logger,
	}

	var err error
	for _, config := range configs {
		config(d, &err)
		if err != nil {
			return nil, err
		}
	}

	if d.provider == nil {
		d.provider = NewPlatformProvider(d.resolver, d.variables...)
	}

	return d, nil
}

// WithProvider replaces the platform provider.
func WithProvider(p Provider) ConfigureDetectorFunc {
	return func(d *Detector, err *error) {
		if p == nil {
			*err = errors.New("provider must not be nil")
			return
		}
		d.provider = p
	}
}

// WithEnvResolver sets the environment used by the POSIX provider.
func WithEnvResolver(r env.Resolver) ConfigureDetectorFunc {
	return func(d *Detector, err *error) {
		if r == nil {
			*err = errors.New("env resolver must not be nil")
			return
		}
		d.resolver = r
	}
}

// WithPosixVariables sets the environment variables consulted by the POSIX
// provider, in order. The first variable set to a non-empty value wins; empty
// values are skipped except for the last variable. Defaults to LANG.
func WithPosixVariables(names ...string) ConfigureDetectorFunc {
	return func(d *Detector, err *error) {
		if len(names) == 0 {
			*err = errors.New("at least one variable name is required")
			return
		}
		d.variables = append([]string(nil), names...)
	}
}

// WithLogger sets the logger receiving debug events for each lookup.
func WithLogger(logger zerolog.Logger) ConfigureDetectorFunc {
	return func(d *Detector, err *error) {
		d.logger = logger
	}
}
