package input

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write as bare YAML scalars
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Runes the front-end consumes before the key table sees them
var reservedRunes = []rune{'q', 'm', 'p', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// specialKeys maps lowercase tcell key names ("left", "enter", "f1") to keys
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		if k == tcell.KeyRune || k == tcell.KeyEscape || k == tcell.KeyCtrlC {
			continue
		}
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses command name → key names bindings into a sparse override table
// The "none" command unbinds the listed keys when merged
// Returns error on unknown command names, invalid key names, or reserved keys
func LoadKeyConfig(sections map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{bindings: make(map[Code]Command)}

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		cmd, ok := CommandByName(name)
		if !ok {
			return nil, fmt.Errorf("keys: unknown command %q (want one of %s)", name, strings.Join(CommandNames(), ", "))
		}
		for _, keyStr := range sections[name] {
			code, err := resolveCode(keyStr)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", name, err)
			}
			if prev, dup := kt.bindings[code]; dup && prev != cmd {
				return nil, fmt.Errorf("keys.%s: %q already bound to %s", name, keyStr, prev)
			}
			kt.bindings[code] = cmd
		}
	}

	return kt, nil
}

// resolveCode converts a key name to a Code
// Accepts single characters, rune aliases, and tcell special key names
func resolveCode(s string) (Code, error) {
	lower := strings.ToLower(strings.TrimSpace(s))

	if r, ok := runeAliases[lower]; ok {
		return RuneCode(r), nil
	}

	if runes := []rune(s); len(runes) == 1 {
		code := RuneCode(runes[0])
		if slices.Contains(reservedRunes, code.Rune) {
			return Code{}, fmt.Errorf("key %q is reserved", s)
		}
		return code, nil
	}

	if k, ok := specialKeys[lower]; ok {
		return KeyCode(k), nil
	}

	return Code{}, fmt.Errorf("invalid key: %q (expected single character, alias, or key name)", s)
}

// MergeKeyTable returns a new KeyTable with base bindings overridden
// Override entries bound to CommandNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for code, cmd := range override.bindings {
		if cmd == CommandNone {
			delete(result.bindings, code)
		} else {
			result.bindings[code] = cmd
		}
	}
	return result
}
