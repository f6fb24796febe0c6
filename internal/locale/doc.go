// Package locale loads and checks flat react-i18next translation bundles: one
// JSON object per locale, mapping translation keys to strings. It validates a
// bundle against an embedded JSON Schema, checks that two bundles expose the
// same key set, and derives the locale tag from the bundle's file name.
package locale
