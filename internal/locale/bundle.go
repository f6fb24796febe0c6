package locale

import (
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"golang.org/x/text/language"
)

// Bundle is one parsed locale file.
type Bundle struct {
	Tag      language.Tag
	Path     string
	Messages map[string]string

	raw map[string]any
}

// TagFromPath derives the locale tag from a bundle path, e.g.
// "src/i18n/locales/zh.json" → zh.
func TagFromPath(p string) (language.Tag, error) {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("locale file %s: %q is not a BCP 47 tag: %w", p, name, err)
	}
	return tag, nil
}

// Parse decodes a flat bundle. Every value must be a string.
func Parse(p string, data []byte) (*Bundle, error) {
	tag, err := TagFromPath(p)
	if err != nil {
		return nil, err
	}

	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", p, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parsing %s: top-level value must be an object", p)
	}

	b := &Bundle{
		Tag:      tag,
		Path:     p,
		Messages: make(map[string]string, len(obj)),
		raw:      obj,
	}
	for k, val := range obj {
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("parsing %s: key %q has a %T value, want string", p, k, val)
		}
		b.Messages[k] = s
	}
	return b, nil
}

// Keys returns the bundle's translation keys, sorted.
func (b *Bundle) Keys() []string {
	return slices.Sorted(maps.Keys(b.Messages))
}

// Lookup returns the translation stored under key. Keys are matched as a
// single JSONPath child, so dotted keys are not treated as nested paths.
func Lookup(b *Bundle, key string) (string, bool) {
	got := jp.R().C(key).First(b.raw)
	s, ok := got.(string)
	return s, ok
}

// CompareKeys returns the keys present in exactly one of the two bundles,
// sorted. An empty result means the bundles have the same key set.
func CompareKeys(a, b *Bundle) []string {
	var diff []string
	for _, k := range a.Keys() {
		if _, ok := b.Messages[k]; !ok {
			diff = append(diff, k)
		}
	}
	for _, k := range b.Keys() {
		if _, ok := a.Messages[k]; !ok {
			diff = append(diff, k)
		}
	}
	slices.Sort(diff)
	return diff
}
