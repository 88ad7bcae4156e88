package dictionary

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// loadI18Next reads an i18next JSON translation file. Both the wrapped form
//
//	{
//	    "_meta": { "name": "Русский", "flag": "🇷🇺" },
//	    "translations": { "Save": "Сохранить" }
//	}
//
// and a flat object of key → value are accepted. The locale is taken from
// the file name (ru.json, app-pt_BR.json). Non-string values are ignored.
func (t *Table) loadI18Next(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("parsing %s: invalid JSON", path)
	}

	locale := LocaleFromPath(path)
	if locale == "" {
		return fmt.Errorf("%s: cannot tell the locale from the file name", path)
	}

	root := gjson.ParseBytes(data)
	if tr := root.Get("translations"); tr.IsObject() {
		root = tr
	}
	if !root.IsObject() {
		return fmt.Errorf("parsing %s: expected a JSON object", path)
	}

	pairs := make(map[string]string)
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String && key.String() != "_meta" {
			pairs[key.String()] = value.String()
		}
		return true
	})

	if err := t.merge(locale, pairs); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
