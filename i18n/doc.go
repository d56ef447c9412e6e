// Package i18n carries the chart and summary labels of lvplot in English and
// Spanish.
//
// Catalogs are YAML files embedded from locales/. Each file names its locale
// and maps dotted keys (curves.title, heatmap.colorbar, ...) to printf-style
// messages. A Localizer picks the best supported locale for a request through
// golang.org/x/text/language and formats messages and numbers with an
// x/text/message printer, so "5.40" reads "5,40" in Spanish.
package i18n
