// SPDX-License-Identifier: MIT
// Package: lvplot/i18n
//
// i18n.go — embedded label catalogs and locale-aware printers.
//
// Contract:
//   - Load() parses locales/*.yaml once; the result is immutable and safe to share.
//   - Localizer.T never fails: a missing key comes back verbatim.
//   - Nothing is registered in x/text's global catalog; each Catalog owns a Builder.

package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the fallback for unmatched requests and missing keys.
const BaseLocale = "en"

const localeGlob = "locales/*.yaml"

//go:embed locales/*.yaml
var embeddedFS embed.FS

var (
	// ErrNoCatalogs indicates that no locale file was found.
	ErrNoCatalogs = errors.New("i18n: no catalog files")

	// ErrBadCatalog indicates a malformed or inconsistent locale file.
	ErrBadCatalog = errors.New("i18n: invalid catalog")
)

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds every locale's messages plus the x/text catalog built from them.
type Catalog struct {
	tags     []language.Tag               // supported tags, base first
	messages map[language.Tag]map[string]string
	builder  *catalog.Builder
	matcher  language.Matcher
}

// Localizer prints messages and numbers for one matched tag.
type Localizer struct {
	tag      language.Tag
	messages map[string]string
	fallback map[string]string
	printer  *message.Printer
	base     *message.Printer // prints keys only the base locale defines
}

// Load parses the embedded catalogs.
func Load() (*Catalog, error) {
	return LoadFS(embeddedFS)
}

// LoadFS parses every locales/*.yaml in fsys. The base locale must be present.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, localeGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoCatalogs
	}
	sort.Strings(paths)

	base := language.Make(BaseLocale)
	c := &Catalog{
		messages: make(map[language.Tag]map[string]string, len(paths)),
		builder:  catalog.NewBuilder(catalog.Fallback(base)),
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err = yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, errors.Join(ErrBadCatalog, err))
		}
		if err = c.add(path, file); err != nil {
			return nil, err
		}
	}

	if _, ok := c.messages[base]; !ok {
		return nil, fmt.Errorf("%w: base locale %s is not defined", ErrBadCatalog, BaseLocale)
	}

	// Base locale first so the matcher falls back to it.
	c.tags = append(c.tags, base)
	for tag := range c.messages {
		if tag != base {
			c.tags = append(c.tags, tag)
		}
	}
	sort.Slice(c.tags[1:], func(i, j int) bool { return c.tags[i+1].String() < c.tags[j+1].String() })
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

func (c *Catalog) add(path string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: %w: locale is required", path, ErrBadCatalog)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: %w: %v", path, ErrBadCatalog, err)
	}
	if _, dup := c.messages[tag]; dup {
		return fmt.Errorf("catalog %s: %w: locale %s defined twice", path, ErrBadCatalog, tag)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: %w: messages are required", path, ErrBadCatalog)
	}

	msgs := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: %w: blank key", path, ErrBadCatalog)
		}
		if err = c.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: key %q: %w", path, key, err)
		}
		msgs[key] = value
	}
	c.messages[tag] = msgs

	return nil
}

// Tags returns the supported tags, base locale first.
func (c *Catalog) Tags() []language.Tag {
	return append([]language.Tag(nil), c.tags...)
}

// Keys returns the sorted message keys of the base locale.
func (c *Catalog) Keys() []string {
	base := c.messages[c.tags[0]]
	keys := make([]string, 0, len(base))
	for k := range base {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Localizer matches lang (a BCP 47 string such as "es-MX") against the
// supported locales. Unparseable or unsupported requests get the base locale.
func (c *Catalog) Localizer(lang string) *Localizer {
	tag := c.tags[0]
	if req, err := language.Parse(strings.TrimSpace(lang)); err == nil {
		if _, idx, conf := c.matcher.Match(req); conf != language.No {
			tag = c.tags[idx]
		}
	}

	return &Localizer{
		tag:      tag,
		messages: c.messages[tag],
		fallback: c.messages[c.tags[0]],
		printer:  message.NewPrinter(tag, message.Catalog(c.builder)),
		base:     message.NewPrinter(c.tags[0], message.Catalog(c.builder)),
	}
}

// Tag returns the matched locale.
func (l *Localizer) Tag() language.Tag { return l.tag }

// T formats the message stored under key with args.
// Keys missing from the matched locale fall back to the base locale;
// keys missing everywhere are returned unchanged.
func (l *Localizer) T(key string, args ...any) string {
	if _, ok := l.messages[key]; ok {
		return l.printer.Sprintf(key, args...)
	}
	if _, ok := l.fallback[key]; ok {
		return l.base.Sprintf(key, args...)
	}

	return key
}

// Number prints v with the given number of decimals and the locale's separators.
func (l *Localizer) Number(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}

	return l.printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}
