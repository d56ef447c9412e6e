package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/katalvlaran/lvplot/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	c, err := i18n.Load()
	require.NoError(t, err)

	tags := c.Tags()
	require.Len(t, tags, 2)
	assert.Equal(t, language.English, tags[0])
	assert.Equal(t, language.Spanish, tags[1])
	assert.Contains(t, c.Keys(), "heatmap.colorbar")
}

// TestLoad_LocalesShareKeys keeps the catalogs in step: every English key
// must have a Spanish translation and vice versa.
func TestLoad_LocalesShareKeys(t *testing.T) {
	t.Parallel()

	c, err := i18n.Load()
	require.NoError(t, err)

	es := c.Localizer("es")
	en := c.Localizer("en")
	for _, key := range c.Keys() {
		assert.NotEqual(t, key, es.T(key, "x", 1.0), "es is missing %s", key)
		assert.NotEqual(t, key, en.T(key, "x", 1.0), "en is missing %s", key)
	}
}

func TestLocalizer_Matching(t *testing.T) {
	t.Parallel()

	c, err := i18n.Load()
	require.NoError(t, err)

	cases := []struct {
		in   string
		want language.Tag
	}{
		{"en", language.English},
		{"es", language.Spanish},
		{"es-MX", language.Spanish},
		{" es ", language.Spanish},
		{"en-GB", language.English},
		{"fr", language.English},
		{"", language.English},
		{"!!not a tag", language.English},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, c.Localizer(tc.in).Tag())
		})
	}
}

func TestLocalizer_T(t *testing.T) {
	t.Parallel()

	c, err := i18n.Load()
	require.NoError(t, err)

	en, es := c.Localizer("en"), c.Localizer("es")
	assert.Equal(t, "Recovery Curves - Benchmark 1", en.T("curves.title", "Benchmark 1"))
	assert.Equal(t, "Curvas de Recuperación - Benchmark 1", es.T("curves.title", "Benchmark 1"))
	assert.Equal(t, "Iteraciones de Recuperación", es.T("heatmap.colorbar"))
	assert.Equal(t, "no.such.key", es.T("no.such.key"))
}

func TestLocalizer_Number(t *testing.T) {
	t.Parallel()

	c, err := i18n.Load()
	require.NoError(t, err)

	assert.Equal(t, "5.40", c.Localizer("en").Number(5.4, 2))
	assert.Equal(t, "5,40", c.Localizer("es").Number(5.4, 2))
	assert.Equal(t, "3", c.Localizer("en").Number(3, -1))
}

func TestLoadFS_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fs   fstest.MapFS
		want error
	}{
		{"empty", fstest.MapFS{}, i18n.ErrNoCatalogs},
		{"no base", fstest.MapFS{
			"locales/es.yaml": {Data: []byte("locale: es\nmessages:\n  a: b\n")},
		}, i18n.ErrBadCatalog},
		{"missing locale", fstest.MapFS{
			"locales/en.yaml": {Data: []byte("messages:\n  a: b\n")},
		}, i18n.ErrBadCatalog},
		{"no messages", fstest.MapFS{
			"locales/en.yaml": {Data: []byte("locale: en\n")},
		}, i18n.ErrBadCatalog},
		{"bad yaml", fstest.MapFS{
			"locales/en.yaml": {Data: []byte("locale: [en\n")},
		}, i18n.ErrBadCatalog},
		{"duplicate", fstest.MapFS{
			"locales/en.yaml":    {Data: []byte("locale: en\nmessages:\n  a: b\n")},
			"locales/en-us.yaml": {Data: []byte("locale: en\nmessages:\n  a: c\n")},
		}, i18n.ErrBadCatalog},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := i18n.LoadFS(tc.fs)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadFS_BaseFallback(t *testing.T) {
	t.Parallel()

	c, err := i18n.LoadFS(fstest.MapFS{
		"locales/en.yaml": {Data: []byte("locale: en\nmessages:\n  greet: \"hello %s\"\n  only.en: \"english\"\n")},
		"locales/es.yaml": {Data: []byte("locale: es\nmessages:\n  greet: \"hola %s\"\n")},
	})
	require.NoError(t, err)

	es := c.Localizer("es")
	assert.Equal(t, "hola mundo", es.T("greet", "mundo"))
	assert.Equal(t, "english", es.T("only.en"))
}
