package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Code identifies a physical key: special keys by Key, printable keys by lowercase Rune
type Code struct {
	Key  tcell.Key
	Rune rune
}

// KeyCode returns the code of a special key
func KeyCode(k tcell.Key) Code {
	return Code{Key: k}
}

// RuneCode returns the code of a printable key, case-folded
func RuneCode(r rune) Code {
	return Code{Key: tcell.KeyRune, Rune: unicode.ToLower(r)}
}

// CodeFromEvent extracts the key code from a terminal key event
func CodeFromEvent(ev *tcell.EventKey) Code {
	if ev.Key() == tcell.KeyRune {
		return RuneCode(ev.Rune())
	}
	return KeyCode(ev.Key())
}

// KeyTable maps physical keys to movement commands
type KeyTable struct {
	bindings map[Code]Command
}

// DefaultKeyTable returns the default bindings, each command has an arrow and letter alternative
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		bindings: map[Code]Command{
			KeyCode(tcell.KeyLeft):  CommandMoveLeft,
			RuneCode('a'):           CommandMoveLeft,
			RuneCode('h'):           CommandMoveLeft,
			KeyCode(tcell.KeyRight): CommandMoveRight,
			RuneCode('d'):           CommandMoveRight,
			RuneCode('l'):           CommandMoveRight,
			KeyCode(tcell.KeyUp):    CommandJump,
			RuneCode(' '):           CommandJump,
			RuneCode('w'):           CommandJump,
			RuneCode('k'):           CommandJump,
		},
	}
}

// Bind adds or replaces a binding
func (kt *KeyTable) Bind(code Code, cmd Command) {
	kt.bindings[code] = cmd
}

// Lookup resolves a code, returns CommandNone for unbound keys
func (kt *KeyTable) Lookup(code Code) Command {
	return kt.bindings[code]
}

// Handles reports whether the code is bound, front-ends suppress default behavior for these
func (kt *KeyTable) Handles(code Code) bool {
	_, ok := kt.bindings[code]
	return ok
}

// Clone returns an independent copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{bindings: make(map[Code]Command, len(kt.bindings))}
	for code, cmd := range kt.bindings {
		c.bindings[code] = cmd
	}
	return c
}

// Len returns the number of bound keys
func (kt *KeyTable) Len() int {
	return len(kt.bindings)
}
