package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
)

// Rune aliases for keys that are awkward as TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"plus":      '+',
	"minus":     '-',
	"equals":    '=',
	"backslash": '\\',
}

// LoadKeyConfig converts [keys] bindings into a sparse override KeyTable
// Keys are single characters, rune aliases or named keys; values are action names
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]KeyEntry),
		Keys:  make(map[terminal.Key]KeyEntry),
	}

	for keyStr, actionName := range bindings {
		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = entry
			continue
		}
		k, ok := terminal.KeyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		kt.Keys[k] = entry
	}

	return kt, nil
}

// resolveRune converts a config key to a rune
// Accepts a single character or a named alias
func resolveRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, true
	}
	r, ok := runeAliases[strings.ToLower(s)]
	return r, ok
}

// resolveAction converts an action name to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries with IntentNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.Keys, override.Keys)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.IntentType == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
