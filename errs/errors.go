package errs

import (
	"errors"

	"github.com/napalu/oslocale/i18n"
)

// The two kinds of lookup failure. Every error returned by a locale lookup
// matches exactly one of them with errors.Is.
var (
	// ErrLookupFailed reports that the OS could not produce a locale value at
	// all. It usually wraps one of the description errors below.
	ErrLookupFailed = i18n.NewError(ErrLookupFailedKey)
	// ErrNotIetfCompliant reports a value that was obtained but does not have a
	// recognized shape. Its single argument is the raw value, see Raw.
	ErrNotIetfCompliant = i18n.NewError(ErrNotIetfCompliantKey)
)

// Descriptions wrapped by ErrLookupFailed
var (
	ErrEnvVarUnset         = i18n.NewError(ErrEnvVarUnsetKey)
	ErrUnsupportedPlatform = i18n.NewError(ErrUnsupportedPlatformKey)
	ErrNativeCallFailed    = i18n.NewError(ErrNativeCallFailedKey)
	ErrInvalidNameLength   = i18n.NewError(ErrInvalidNameLengthKey)
)

// NotIetfCompliant returns an ErrNotIetfCompliant carrying raw.
func NotIetfCompliant(raw string) error {
	return ErrNotIetfCompliant.WithArgs(raw)
}

// LookupFailed returns an ErrLookupFailed, wrapping cause when it is not nil.
func LookupFailed(cause error) error {
	if cause == nil {
		return ErrLookupFailed
	}
	return ErrLookupFailed.Wrap(cause)
}

// Raw returns the raw locale value preserved by an ErrNotIetfCompliant in err's chain.
func Raw(err error) (string, bool) {
	for err != nil {
		if te, ok := err.(i18n.TranslatableError); ok && te.Is(ErrNotIetfCompliant) {
			if args := te.Args(); len(args) > 0 {
				raw, ok := args[0].(string)
				return raw, ok
			}
			return "", false
		}
		err = errors.Unwrap(err)
	}
	return "", false
}

// Description returns the human-readable reason wrapped by an ErrLookupFailed in
// err's chain. It reports false when the lookup failure carries no description.
func Description(err error) (string, bool) {
	for err != nil {
		if te, ok := err.(i18n.TranslatableError); ok && te.Is(ErrLookupFailed) {
			if cause := te.Unwrap(); cause != nil {
				return cause.Error(), true
			}
			return "", false
		}
		err = errors.Unwrap(err)
	}
	return "", false
}

// UpdateMessageProvider changes the provider used to render all errors of this package.
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
}
