// Package errs defines the errors reported by locale lookups.
// This file contains constants for all translation keys used by the library.
package errs

const (
	prefixKey = "oslocale"
)

// ErrorPrefixKey prefixes all error translation keys
const (
	ErrorPrefixKey = prefixKey + ".error"
)

const (
	ErrLookupFailedKey        = ErrorPrefixKey + ".lookup_failed"
	ErrNotIetfCompliantKey    = ErrorPrefixKey + ".not_ietf_compliant"
	ErrEnvVarUnsetKey         = ErrorPrefixKey + ".env_var_unset"
	ErrUnsupportedPlatformKey = ErrorPrefixKey + ".unsupported_platform"
	ErrNativeCallFailedKey    = ErrorPrefixKey + ".native_call_failed"
	ErrInvalidNameLengthKey   = ErrorPrefixKey + ".invalid_name_length"
)
