package i18n

import (
	"sync"

	"golang.org/x/text/language"
)

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// FormattingMessageProvider is implemented by providers that render format
// arguments themselves, for example with locale-aware number formatting.
// TrError.Format prefers it over GetMessage followed by fmt.Sprintf.
type FormattingMessageProvider interface {
	MessageProvider
	GetFormattedMessage(key string, args ...interface{}) string
}

// BundleMessageProvider implements FormattingMessageProvider using a bundle
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a new provider with a bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{
		bundle: bundle,
	}
}

// GetMessage returns the message for key in the bundle's default language, falling
// back to English and finally to the key itself.
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	if lang, ok := p.languageFor(key); ok {
		msg, _ := p.bundle.Message(lang, key)
		return msg
	}

	return key
}

// GetFormattedMessage renders key with args through the bundle's printer for the
// same language GetMessage would use. An unknown key is returned unformatted.
func (p *BundleMessageProvider) GetFormattedMessage(key string, args ...interface{}) string {
	if p.bundle == nil {
		return key
	}

	if lang, ok := p.languageFor(key); ok {
		return p.bundle.TL(lang, key, args...)
	}

	return key
}

// languageFor returns the bundle's default language when it translates key, or
// English as a fallback.
func (p *BundleMessageProvider) languageFor(key string) (language.Tag, bool) {
	if lang := p.bundle.GetDefaultLanguage(); p.bundle.HasKey(lang, key) {
		return lang, true
	}
	if p.bundle.HasKey(language.English, key) {
		return language.English, true
	}
	return language.Und, false
}

// Package-level provider management
var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider allows users to set their own provider. Passing nil
// restores the provider backed by Default().
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}
	return defaultProvider
}
