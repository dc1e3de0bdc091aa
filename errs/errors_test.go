package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/napalu/oslocale/i18n"
	"github.com/napalu/oslocale/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNotIetfCompliant(t *testing.T) {
	err := NotIetfCompliant("en")

	testutil.AssertErrorIs(t, err, ErrNotIetfCompliant, "en")
	assert.False(t, errors.Is(err, ErrLookupFailed))
	assert.Equal(t, `locale code returned is not ietf compliant: "en"`, err.Error())

	raw, ok := Raw(err)
	assert.True(t, ok)
	assert.Equal(t, "en", raw)

	raw, ok = Raw(fmt.Errorf("detect: %w", err))
	assert.True(t, ok, "raw value is found through wrapping")
	assert.Equal(t, "en", raw)
}

func TestLookupFailed(t *testing.T) {
	tests := []struct {
		name        string
		cause       error
		wantMessage string
		wantDesc    string
		wantHasDesc bool
	}{
		{
			name:        "without description",
			cause:       nil,
			wantMessage: "getting locale from system failed",
		},
		{
			name:        "unset variable",
			cause:       ErrEnvVarUnset.WithArgs("LANG"),
			wantMessage: "getting locale from system failed: environment variable not found: LANG",
			wantDesc:    "environment variable not found: LANG",
			wantHasDesc: true,
		},
		{
			name:        "plain cause",
			cause:       errors.New("access denied"),
			wantMessage: "getting locale from system failed: access denied",
			wantDesc:    "access denied",
			wantHasDesc: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LookupFailed(tt.cause)

			assert.True(t, errors.Is(err, ErrLookupFailed))
			assert.False(t, errors.Is(err, ErrNotIetfCompliant))
			assert.Equal(t, tt.wantMessage, err.Error())

			desc, ok := Description(err)
			assert.Equal(t, tt.wantHasDesc, ok)
			assert.Equal(t, tt.wantDesc, desc)

			_, ok = Raw(err)
			assert.False(t, ok)
		})
	}
}

func TestLookupFailedChain(t *testing.T) {
	cause := ErrEnvVarUnset.WithArgs("LANG")
	err := LookupFailed(cause)

	testutil.AssertErrorChain(t, err, ErrLookupFailed, ErrEnvVarUnset)
}

func TestRawAndDescriptionOnForeignErrors(t *testing.T) {
	_, ok := Raw(nil)
	assert.False(t, ok)
	_, ok = Raw(errors.New("other"))
	assert.False(t, ok)
	_, ok = Description(errors.New("other"))
	assert.False(t, ok)
}

func TestUpdateMessageProvider(t *testing.T) {
	original := ErrLookupFailed.Error()

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	bundle.SetDefaultLanguage(language.French)

	UpdateMessageProvider(i18n.NewBundleMessageProvider(bundle))
	t.Cleanup(func() { UpdateMessageProvider(nil) })

	assert.NotEqual(t, original, ErrLookupFailed.Error())
	assert.Equal(t, "échec de la récupération de la locale du système", ErrLookupFailed.Error())
	assert.Equal(t,
		"échec de la récupération de la locale du système: variable d'environnement introuvable : LANG",
		LookupFailed(ErrEnvVarUnset.WithArgs("LANG")).Error())
}
