// Package i18n provides the message catalogs used to render locale lookup errors.
//
// Error messages are resolved through a MessageProvider. By default the provider
// reads from the embedded bundle returned by Default(), which ships English, German
// and French catalogs. Hosts that want errors rendered in another language build
// their own bundle and install a provider for it.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
	ErrBundleImmutable                    = errors.New("bundle is immutable and cannot be modified")
)

// Bundle holds translations per language. Languages keep their insertion order so
// the default language is always the first candidate offered to the matcher.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations *orderedmap.OrderedMap[string, map[string]string] // key is language.Tag.String()
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
	supported    []language.Tag
	isImmutable  bool
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
)

// Default returns the shared bundle built from the embedded catalogs. The shared
// bundle is immutable.
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		b, err := NewBundle()
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
		b.isImmutable = true
		defaultBundle = b
	})

	return defaultBundle
}

// NewBundle returns a mutable bundle loaded with the embedded catalogs.
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: orderedmap.New[string, map[string]string](),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{}),
	}
}

// NewBundleWithFS loads every <tag>.json file found in dirPrefix. The first lang, if
// given, becomes the default language and must have translations.
func NewBundleWithFS(fsys fs.FS, dirPrefix string, lang ...language.Tag) (*Bundle, error) {
	b := NewEmptyBundle()
	if len(lang) > 0 {
		b.defaultLang = lang[0]
	}

	if err := b.LoadFromFS(fsys, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations.Get(b.defaultLang.String()); !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// TL renders key in lang with args through the bundle's message printers. A
// language without translations falls back to its closest match and then to the
// default language. Callers should check HasKey first, since a printer formats an
// unknown key as if it were the message.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}

	if matched, ok := b.match(lang); ok {
		if p, exists := b.printers[matched]; exists {
			return p.Sprintf(key, args...)
		}
	}

	if p := b.printers[b.defaultLang]; p != nil {
		return p.Sprintf(key, args...)
	}

	return key
}

// Message returns the raw, unformatted message for key in lang.
func (b *Bundle) Message(lang language.Tag, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, ok := b.translations.Get(lang.String())
	if !ok {
		return "", false
	}
	msg, ok := translations[key]
	return msg, ok
}

// AddLanguage adds a new language to the bundle or merges into an existing one.
// Languages other than the default must carry the same keys as the languages
// already present.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	if b.isImmutable {
		return ErrBundleImmutable
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	original, hadOriginal := b.translations.Get(lang.String())
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	if lang != b.defaultLang && !hadOriginal {
		if errs := b.validateLanguage(lang, merged); len(errs) > 0 {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
		}
	}

	// The catalog is filled into a scratch builder first so a failure leaves
	// neither the translations nor the shared catalog half updated.
	scratch := catalog.NewBuilder()
	for key, value := range translations {
		if err := scratch.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
		}
	}
	for key, value := range translations {
		_ = b.catalog.SetString(lang, key, value)
	}

	b.translations.Set(lang.String(), merged)
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.updateMatcher()

	return nil
}

// LoadFromFS loads language files from dirPrefix. The default language is loaded
// first so that the other languages are validated against it.
func (b *Bundle) LoadFromFS(fsys fs.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(fsys, dirPrefix)
	if err != nil {
		return err
	}

	type langFile struct {
		tag  language.Tag
		path string
	}

	var deferred []langFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		filePath := path.Join(dirPrefix, entry.Name())
		if tag != b.defaultLang {
			deferred = append(deferred, langFile{tag: tag, path: filePath})
			continue
		}
		if err := b.processLangFile(fsys, tag, filePath); err != nil {
			return err
		}
	}

	for _, lf := range deferred {
		if err := b.processLangFile(fsys, lf.tag, lf.path); err != nil {
			return err
		}
	}

	return nil
}

// HasKey reports whether lang has its own translation for key.
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	_, ok := b.Message(lang, key)
	return ok
}

// SetDefaultLanguage sets the default language, using language matching to find
// the best available match. It is a no-op on an immutable bundle.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	if b.isImmutable {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.translations.Len() == 0 {
		b.defaultLang = lang
		return
	}

	if tag, ok := b.match(lang); ok {
		b.defaultLang = tag
	}
}

func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

// match must be called with b.mu held. It returns one of the bundle's own tags.
func (b *Bundle) match(requested language.Tag) (language.Tag, bool) {
	if _, exists := b.translations.Get(requested.String()); exists {
		return requested, true
	}
	if len(b.supported) == 0 {
		return language.Und, false
	}

	_, index, confidence := b.matcher.Match(requested)
	if confidence == language.No {
		return language.Und, false
	}
	return b.supported[index], true
}

func (b *Bundle) updateMatcher() {
	supported := make([]language.Tag, 0, b.translations.Len())
	for pair := b.translations.Oldest(); pair != nil; pair = pair.Next() {
		if tag, err := language.Parse(pair.Key); err == nil {
			supported = append(supported, tag)
		}
	}
	if len(supported) > 0 {
		b.supported = supported
		b.matcher = language.NewMatcher(supported)
	}
}

func (b *Bundle) processLangFile(fsys fs.FS, lang language.Tag, filePath string) error {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	return b.AddLanguage(lang, translations)
}

// validateLanguage checks translations proposed for lang against the languages
// already present. It must be called with b.mu held.
func (b *Bundle) validateLanguage(lang language.Tag, translations map[string]string) []error {
	var e []error

	if len(translations) == 0 {
		e = append(e, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	var reference map[string]string
	for pair := b.translations.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != lang.String() && len(pair.Value) > 0 {
			reference = pair.Value
			break
		}
	}

	if reference == nil {
		return e
	}

	for key := range reference {
		if _, exists := translations[key]; !exists {
			e = append(e, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}

	for key := range translations {
		if _, exists := reference[key]; !exists {
			e = append(e, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return e
}
