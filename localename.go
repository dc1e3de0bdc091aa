package oslocale

import (
	"unicode/utf16"

	"github.com/napalu/oslocale/errs"
)

// localeNameMaxLength is LOCALE_NAME_MAX_LENGTH from winnt.h, in UTF-16 code
// units including the terminating NUL.
const localeNameMaxLength = 85

// decodeLocaleName decodes the first n code units written to buf by a Windows
// locale-name call. n counts the terminating NUL. Reading stops at the first NUL
// so nothing past the written name is decoded.
func decodeLocaleName(buf []uint16, n int) (string, error) {
	if n <= 0 || n > len(buf) {
		return "", errs.LookupFailed(errs.ErrInvalidNameLength.WithArgs(n, len(buf)))
	}

	name := buf[:n]
	for i, c := range name {
		if c == 0 {
			name = name[:i]
			break
		}
	}

	if len(name) == 0 {
		return "", errs.LookupFailed(errs.ErrInvalidNameLength.WithArgs(0, len(buf)))
	}

	return string(utf16.Decode(name)), nil
}

// localeFromCall interprets the result of a Windows locale-name call named proc.
// A zero return means the call failed and callErr carries the reason; otherwise
// ret is the number of code units written to buf.
func localeFromCall(proc string, ret uintptr, callErr error, buf []uint16) (string, error) {
	if ret == 0 {
		return "", errs.LookupFailed(errs.ErrNativeCallFailed.WithArgs(proc).Wrap(callErr))
	}

	return decodeLocaleName(buf, int(int32(ret)))
}
