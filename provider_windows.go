//go:build windows

package oslocale

import (
	"unsafe"

	"github.com/napalu/oslocale/env"
	"github.com/napalu/oslocale/errs"
	"golang.org/x/sys/windows"
)

var (
	kernel32                     = windows.NewLazySystemDLL("kernel32.dll")
	procGetUserDefaultLocaleName = kernel32.NewProc("GetUserDefaultLocaleName")
)

// NewPlatformProvider returns the provider compiled in for this target. Windows
// does not consult the environment.
func NewPlatformProvider(_ env.Resolver, _ ...string) Provider {
	return windowsProvider{}
}

type windowsProvider struct{}

// Locale returns the user default locale name, which Windows already formats as
// an IETF tag. On single-user systems this may be the system default.
func (windowsProvider) Locale() (string, error) {
	// Vista+
	if err := procGetUserDefaultLocaleName.Find(); err != nil {
		return "", errs.LookupFailed(errs.ErrNativeCallFailed.WithArgs(procGetUserDefaultLocaleName.Name).Wrap(err))
	}

	buf := make([]uint16, localeNameMaxLength)
	ret, _, callErr := procGetUserDefaultLocaleName.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)

	return localeFromCall(procGetUserDefaultLocaleName.Name, ret, callErr, buf)
}

func (windowsProvider) String() string {
	return "windows"
}
