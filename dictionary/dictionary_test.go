package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "common.yaml", `
es_ES:
  Save: Guardar
  "Quote\"Test": "Valor\"Prueba"
  Empty: ""
fr-fr:
  Save: Enregistrer
`)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"es-ES", "fr-FR"}, table.Locales())
	assert.Equal(t, 2, table.Len("es_ES"))

	lookup := table.Lookup("es_ES")
	v, ok := lookup("Save")
	assert.True(t, ok)
	assert.Equal(t, "Guardar", v)

	v, ok = lookup(`Quote"Test`)
	assert.True(t, ok)
	assert.Equal(t, `Valor"Prueba`, v)

	_, ok = lookup("Empty")
	assert.False(t, ok, "empty translations are dropped")

	v, _ = table.Lookup("fr_FR")("Save")
	assert.Equal(t, "Enregistrer", v)
}

func TestLoadLaterSourceWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "es_ES:\n  Save: Salvar\n  Open: Abrir\n")
	writeFile(t, dir, "b.yaml", "es-ES:\n  Save: Guardar\n")

	table, err := Load(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)

	lookup := table.Lookup("es-ES")
	v, _ := lookup("Save")
	assert.Equal(t, "Guardar", v)
	v, _ = lookup("Open")
	assert.Equal(t, "Abrir", v)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "common.toml", `
[es_ES]
Save = "Guardar"
'Quote"Test' = 'Valor"Prueba'

[pt-BR]
Save = "Salvar"
`)

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"es-ES", "pt-BR"}, table.Locales())

	v, ok := table.Lookup("es_ES")(`Quote"Test`)
	assert.True(t, ok)
	assert.Equal(t, `Valor"Prueba`, v)

	v, _ = table.Lookup("pt_BR")("Save")
	assert.Equal(t, "Salvar", v)
}

func TestLoadI18Next(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ru.json", `{
  "_meta": { "name": "Русский", "flag": "🇷🇺" },
  "translations": {
    "Save": "Сохранить",
    "Delete": "",
    "Count": 3
  }
}`)
	writeFile(t, dir, "app-pt_BR.json", `{"Save": "Salvar", "_meta": {"name": "x"}}`)

	table, err := Load(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"pt-BR", "ru"}, table.Locales())
	assert.Equal(t, 1, table.Len("ru"))

	v, ok := table.Lookup("ru")("Save")
	assert.True(t, ok)
	assert.Equal(t, "Сохранить", v)

	_, ok = table.Lookup("ru")("Delete")
	assert.False(t, ok)

	v, _ = table.Lookup("pt_BR")("Save")
	assert.Equal(t, "Salvar", v)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "legacy/designsetgo-de_DE.po", `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: de_DE\n"

msgid "Save"
msgstr "Speichern"

msgid "Untranslated"
msgstr ""

msgid "One file"
msgid_plural "%d files"
msgstr[0] "Eine Datei"
msgstr[1] "%d Dateien"
`)

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"de-DE"}, table.Locales())

	lookup := table.Lookup("de_DE")
	v, ok := lookup("Save")
	assert.True(t, ok)
	assert.Equal(t, "Speichern", v)

	_, ok = lookup("Untranslated")
	assert.False(t, ok)
	_, ok = lookup("One file")
	assert.False(t, ok, "plural entries are not used")
}

func TestLoadCatalogLanguageHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "legacy.po", `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: it\n"

msgid "Save"
msgstr "Salva"
`)

	table, err := Load(path)
	require.NoError(t, err)

	v, ok := table.Lookup("it")("Save")
	assert.True(t, ok)
	assert.Equal(t, "Salva", v)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "bad.yaml", "es_ES: [not, a, map]\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "table.txt", "Save=Guardar"))
	assert.ErrorContains(t, err, "unsupported dictionary type")

	_, err = Load(writeFile(t, dir, "bad.toml", "[es_ES\nSave = 1\n"))
	assert.ErrorContains(t, err, "parsing")

	_, err = Load(writeFile(t, dir, "es.json", `{"Save": `))
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = Load(writeFile(t, dir, "table.json", `{"Save": "Guardar"}`))
	assert.ErrorContains(t, err, "cannot tell the locale")

	_, err = Load(writeFile(t, dir, "de.json", `["Save"]`))
	assert.ErrorContains(t, err, "expected a JSON object")

	_, err = Load(writeFile(t, dir, "locale.yaml", "not a locale!:\n  Save: x\n"))
	assert.ErrorContains(t, err, "invalid locale")

	// A glob that matches nothing is not an error.
	table, err := Load(filepath.Join(dir, "none", "*.yaml"))
	require.NoError(t, err)
	assert.Empty(t, table.Locales())
}

func TestLookupFallsBackToBaseLanguage(t *testing.T) {
	table, err := FromMap(map[string]map[string]string{
		"es":    {"Save": "Guardar", "Color": "Color"},
		"es_MX": {"Delete": "Eliminar"},
	})
	require.NoError(t, err)

	lookup := table.Lookup("es-MX")
	v, _ := lookup("Delete")
	assert.Equal(t, "Eliminar", v)
	v, _ = lookup("Save")
	assert.Equal(t, "Guardar", v)

	assert.True(t, table.Has("es_AR"))
	assert.Equal(t, 0, table.Len("es_AR"))
	assert.False(t, table.Has("fr"))

	_, ok := table.Lookup("fr")("Save")
	assert.False(t, ok)
	_, ok = table.Lookup("!!")("Save")
	assert.False(t, ok)
}

func TestCanonicalLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"es_ES", "es-ES"},
		{"es-es", "es-ES"},
		{"pt_BR.UTF-8", "pt-BR"},
		{"sr_RS@latin", "sr-RS"},
		{"zh_Hant", "zh-Hant"},
		{"de", "de"},
	}
	for _, tc := range tests {
		got, err := CanonicalLocale(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := CanonicalLocale("")
	assert.Error(t, err)
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale(" pt_BR.UTF-8 ")
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("pt-BR"), tag)

	tag, err = ParseLocale("sr_RS@latin")
	require.NoError(t, err)
	region, conf := tag.Region()
	assert.Equal(t, "RS", region.String())
	assert.Equal(t, language.Exact, conf)

	for _, bad := range []string{"", ".UTF-8", "not a locale"} {
		_, err := ParseLocale(bad)
		assert.Error(t, err, bad)
	}
}

func TestLocaleFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"languages/designsetgo-es_ES.po", "es_ES"},
		{"languages/designsetgo-fr_FR.mo", "fr_FR"},
		{"po/ru.po", "ru"},
		{"po/pt-BR.po", "pt-BR"},
		{"po/zh_Hant.po", "zh_Hant"},
		{"languages/designsetgo.pot", ""},
		{"po/messages.po", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, LocaleFromPath(tc.path), tc.path)
	}
}
