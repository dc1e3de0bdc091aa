//go:build darwin && cgo

package oslocale

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation
#include <stdlib.h>
#include <string.h>
#import <Foundation/Foundation.h>

static char* CurrentLocaleIdentifier() {
	@autoreleasepool {
		NSLocale *current = [NSLocale currentLocale];
		if (current == nil) {
			return NULL;
		}

		NSString *identifier = [current localeIdentifier];
		if (identifier == nil || [identifier length] == 0) {
			return NULL;
		}

		const char *utf8 = [identifier UTF8String];
		if (utf8 == NULL) {
			return NULL;
		}
		return strdup(utf8);
	}
}
*/
import "C"

import (
	"unsafe"

	"github.com/napalu/oslocale/env"
	"github.com/napalu/oslocale/errs"
)

// NewPlatformProvider returns the provider compiled in for this target. Apple
// platforms do not consult the environment.
func NewPlatformProvider(_ env.Resolver, _ ...string) Provider {
	return appleProvider{}
}

type appleProvider struct{}

// Locale returns [[NSLocale currentLocale] localeIdentifier] with underscores
// replaced by hyphens.
func (appleProvider) Locale() (string, error) {
	identifier := C.CurrentLocaleIdentifier()
	if identifier == nil {
		return "", errs.LookupFailed(errs.ErrNativeCallFailed.WithArgs("[NSLocale currentLocale]"))
	}
	defer C.free(unsafe.Pointer(identifier))

	return normalizeApple(C.GoString(identifier)), nil
}

func (appleProvider) String() string {
	return "apple"
}
