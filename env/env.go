// Package env abstracts access to the process environment so that locale
// lookups can be exercised without mutating the real environment.
package env

import "os"

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Get returns the value of the environment variable named by the key.
	// It returns an empty string if the variable is not present.
	Get(key string) string

	// Lookup returns the value of the environment variable named by the key
	// and reports whether the variable is present. A variable that is set to
	// the empty string is present.
	Lookup(key string) (string, bool)
}

// DefaultEnvResolver is the default implementation of the Resolver interface
// that encapsulates environment resolution using the os package.
type DefaultEnvResolver struct{}

// Get returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Get(key string) string {
	return os.Getenv(key)
}

// Lookup returns the value of the environment variable associated with the given key
// and whether it is set.
func (r *DefaultEnvResolver) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapResolver resolves variables from a fixed map. Keys missing from the map are unset.
type MapResolver map[string]string

// Get returns the mapped value or an empty string.
func (m MapResolver) Get(key string) string {
	return m[key]
}

// Lookup returns the mapped value and whether the key is present.
func (m MapResolver) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
