package oslocale

import (
	"strings"

	"github.com/napalu/oslocale/errs"
)

// posixDefaultLocale is the unset-locale sentinel of the C library.
const posixDefaultLocale = "C"

// NormalizePosix converts a POSIX locale value shaped like
// language_REGION[.CHARSET][@MODIFIER] or "language_REGION CHARSET" into an IETF tag.
//
// The value is cut at the first '.' or space, underscores become hyphens and
// any @modifier is dropped: "aa_ER@saaho UTF-8" yields "aa-ER". A value without
// a '.' or space suffix, including an already normalized tag, is rejected with
// errs.ErrNotIetfCompliant. So is a value that leaves nothing before the suffix,
// such as ".UTF-8" or "@euro UTF-8", rather than yielding an empty tag. "C"
// yields DefaultLocale.
func NormalizePosix(raw string) (string, error) {
	if raw == posixDefaultLocale {
		return DefaultLocale, nil
	}

	pos := strings.IndexAny(raw, ". ")
	if pos < 0 {
		return "", errs.NotIetfCompliant(raw)
	}

	tag := strings.ReplaceAll(raw[:pos], "_", "-")
	if at := strings.IndexByte(tag, '@'); at >= 0 {
		tag = tag[:at]
	}

	if tag == "" {
		return "", errs.NotIetfCompliant(raw)
	}

	return tag, nil
}

// normalizeApple converts an Apple locale identifier such as "en_US" to "en-US".
// Modifiers such as "@currency=EUR" are kept.
func normalizeApple(identifier string) string {
	return strings.ReplaceAll(identifier, "_", "-")
}
