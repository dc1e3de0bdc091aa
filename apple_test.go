package oslocale

import (
	"errors"
	"testing"

	"github.com/napalu/oslocale/errs"
	"github.com/napalu/oslocale/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAppleLocaleFromDefaults(t *testing.T) {
	got, err := appleLocaleFromDefaults([]byte("sv_SE\n"), nil)
	assert.NoError(t, err)
	assert.Equal(t, "sv-SE", got)

	got, err = appleLocaleFromDefaults([]byte("en_US@rg=gbzzzz\n"), nil)
	assert.NoError(t, err)
	assert.Equal(t, "en-US@rg=gbzzzz", got, "modifiers are not stripped")

	cause := errors.New("exit status 1")
	_, err = appleLocaleFromDefaults(nil, cause)
	testutil.AssertErrorChain(t, err, errs.ErrLookupFailed, errs.ErrNativeCallFailed, cause)

	_, err = appleLocaleFromDefaults([]byte("  \n"), nil)
	assert.True(t, errors.Is(err, errs.ErrLookupFailed))
}
