package i18n

import (
	"errors"
	"fmt"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	Format(provider MessageProvider) string
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. Copies made through WithArgs and Wrap share the
// sentinel of the error they were derived from, so errors.Is matches them
// against the package-level value.
//
// Example usage:
//
//	err := NewError("oslocale.error.not_ietf_compliant")
//	err = err.WithArgs("en")
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The translation key
	key string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped error
	// nil means the package default provider
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// NewErrorWithProvider creates a new translatable error with a key and specific provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	e := NewError(key)
	e.messageProvider = provider
	return e
}

// Error returns the message in the provider's language, formatted with args if provided
func (e *TrError) Error() string {
	provider := e.messageProvider
	if provider == nil {
		provider = getDefaultProvider()
	}
	return e.Format(provider)
}

// Format renders the error using the given provider.
func (e *TrError) Format(provider MessageProvider) string {
	var msg string
	if fp, ok := provider.(FormattingMessageProvider); ok && len(e.args) > 0 {
		msg = fp.GetFormattedMessage(e.key, e.args...)
	} else {
		msg = provider.GetMessage(e.key)
		if len(e.args) > 0 {
			msg = fmt.Sprintf(msg, e.args...)
		}
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s", msg, formatWrapped(e.wrapped, provider))
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func formatWrapped(err error, provider MessageProvider) string {
	if te, ok := err.(TranslatableError); ok {
		return te.Format(provider)
	}
	return err.Error()
}
