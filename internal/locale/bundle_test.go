package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const zhBundle = `{
  "title": "欢迎使用 i18n 演示",
  "description": "这是一个简单的国际化示例。",
  "language": "语言"
}`

func TestParse(t *testing.T) {
	b, err := Parse("src/i18n/locales/zh.json", []byte(zhBundle))
	require.NoError(t, err)

	assert.Equal(t, language.Chinese, b.Tag)
	assert.Equal(t, []string{"description", "language", "title"}, b.Keys())
	assert.Equal(t, "语言", b.Messages["language"])
}

func TestParse_RejectsNonStringValue(t *testing.T) {
	_, err := Parse("en.json", []byte(`{"title": 3}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "title"`)
}

func TestParse_RejectsArray(t *testing.T) {
	_, err := Parse("en.json", []byte(`["title"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an object")
}

func TestTagFromPath(t *testing.T) {
	tag, err := TagFromPath("locales/en.json")
	require.NoError(t, err)
	assert.Equal(t, language.English, tag)

	tag, err = TagFromPath("pt-BR.json")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", tag.String())

	_, err = TagFromPath("locales/not_a_tag!.json")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	b, err := Parse("zh.json", []byte(zhBundle))
	require.NoError(t, err)

	got, ok := Lookup(b, "title")
	assert.True(t, ok)
	assert.Equal(t, "欢迎使用 i18n 演示", got)

	_, ok = Lookup(b, "missing")
	assert.False(t, ok)
}

func TestLookup_DottedKeyIsLiteral(t *testing.T) {
	b, err := Parse("en.json", []byte(`{"nav.home": "Home", "nav": "Navigation"}`))
	require.NoError(t, err)

	got, ok := Lookup(b, "nav.home")
	assert.True(t, ok)
	assert.Equal(t, "Home", got)
}

func TestCompareKeys(t *testing.T) {
	en, err := Parse("en.json", []byte(`{"title": "a", "description": "b", "language": "c"}`))
	require.NoError(t, err)
	zh, err := Parse("zh.json", []byte(zhBundle))
	require.NoError(t, err)

	assert.Empty(t, CompareKeys(en, zh))

	partial, err := Parse("fr.json", []byte(`{"title": "Bienvenue", "footer": "Pied"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"description", "footer", "language"}, CompareKeys(en, partial))
}
