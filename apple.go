package oslocale

import (
	"bytes"

	"github.com/napalu/oslocale/errs"
)

// appleLocaleFromDefaults turns the output of `defaults read -g AppleLocale`
// into an IETF tag.
func appleLocaleFromDefaults(out []byte, err error) (string, error) {
	if err != nil {
		return "", errs.LookupFailed(errs.ErrNativeCallFailed.WithArgs("defaults read -g AppleLocale").Wrap(err))
	}

	identifier := string(bytes.TrimSpace(out))
	if identifier == "" {
		return "", errs.LookupFailed(errs.ErrNativeCallFailed.WithArgs("defaults read -g AppleLocale"))
	}

	return normalizeApple(identifier), nil
}
