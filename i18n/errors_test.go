package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type mapProvider map[string]string

func (m mapProvider) GetMessage(key string) string {
	if msg, ok := m[key]; ok {
		return msg
	}
	return key
}

func TestTrError(t *testing.T) {
	provider := mapProvider{
		"test.error":   "test error %s",
		"test.wrapper": "wrapper",
	}
	err := NewErrorWithProvider("test.error", provider)

	assert.Equal(t, "test.error", err.Key())
	assert.Equal(t, "test error %s", err.Error())

	withArgs := err.WithArgs("arg1")
	assert.Equal(t, []interface{}{"arg1"}, withArgs.Args())
	assert.Equal(t, "test error arg1", withArgs.Error())
	assert.True(t, errors.Is(withArgs, err))

	inner := errors.New("inner")
	wrapped := NewErrorWithProvider("test.wrapper", provider).Wrap(inner)
	assert.Equal(t, "wrapper: inner", wrapped.Error())
	assert.Same(t, inner, wrapped.Unwrap())
	assert.True(t, errors.Is(wrapped, inner))
}

func TestTrError_IsDistinguishesSentinels(t *testing.T) {
	a := NewError("same.key")
	b := NewError("same.key")

	assert.True(t, errors.Is(a.WithArgs(1), a))
	assert.False(t, errors.Is(a, b), "sentinels are compared by identity, not key")

	chained := fmt.Errorf("context: %w", a.WithArgs("x"))
	assert.True(t, errors.Is(chained, a))

	var te TranslatableError
	require.True(t, errors.As(chained, &te))
	assert.Equal(t, "same.key", te.Key())
}

func TestTrError_FormatNestedTranslatable(t *testing.T) {
	provider := mapProvider{
		"outer": "outer failed",
		"inner": "inner %d",
	}
	outer := NewError("outer").Wrap(NewError("inner").WithArgs(7))

	assert.Equal(t, "outer failed: inner 7", outer.Format(provider))
}

func TestTrError_DefaultProvider(t *testing.T) {
	err := NewError("oslocale.error.lookup_failed")
	assert.Equal(t, "getting locale from system failed", err.Error())

	unknown := NewError("no.such.key")
	assert.Equal(t, "no.such.key", unknown.Error())
}

func TestSetDefaultMessageProvider(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)
	b.SetDefaultLanguage(language.German)

	SetDefaultMessageProvider(NewBundleMessageProvider(b))
	t.Cleanup(func() { SetDefaultMessageProvider(nil) })

	e := NewError("oslocale.error.lookup_failed")
	assert.Equal(t, "Abfrage des Gebietsschemas beim System fehlgeschlagen", e.Error())
}

func TestBundleMessageProvider_Fallbacks(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"only.en": "english"}))
	require.NoError(t, b.AddLanguage(language.Spanish, map[string]string{"only.en": "español"}))
	b.SetDefaultLanguage(language.Spanish)

	p := NewBundleMessageProvider(b)
	assert.Equal(t, "español", p.GetMessage("only.en"))
	assert.Equal(t, "missing", p.GetMessage("missing"))

	assert.Equal(t, "k", NewBundleMessageProvider(nil).GetMessage("k"))
}

func TestBundleMessageProvider_GetFormattedMessage(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"count": "%d entries"}))
	require.NoError(t, b.AddLanguage(language.Spanish, map[string]string{"count": "%d entradas"}))
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"name": "name %q"}), "merging a key only English has")
	b.SetDefaultLanguage(language.Spanish)

	p := NewBundleMessageProvider(b)
	assert.Equal(t, "3 entradas", p.GetFormattedMessage("count", 3))
	assert.Equal(t, `name "x"`, p.GetFormattedMessage("name", "x"), "falls back to English")
	assert.Equal(t, "missing", p.GetFormattedMessage("missing", 1), "unknown keys are not used as formats")
	assert.Equal(t, "k", NewBundleMessageProvider(nil).GetFormattedMessage("k", 1))
}

func TestTrError_FormatUsesBundlePrinter(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)
	b.SetDefaultLanguage(language.German)
	p := NewBundleMessageProvider(b)

	e := NewError("oslocale.error.env_var_unset").WithArgs("LANG")
	assert.Equal(t, "Umgebungsvariable nicht gefunden: LANG", e.Format(p))

	outer := NewError("oslocale.error.lookup_failed").Wrap(e)
	assert.Equal(t, "Abfrage des Gebietsschemas beim System fehlgeschlagen: Umgebungsvariable nicht gefunden: LANG", outer.Format(p))

	unknown := NewError("no.such.key").WithArgs("x")
	assert.Equal(t, "no.such.key", unknown.Format(p))
}
