package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-testutil"
)

func TestLoadKeyConfig(t *testing.T) {
	tests := map[string]struct {
		sections map[string][]string
		check    map[Code]Command
		expErr   string
	}{
		"runes and special keys": {
			sections: map[string][]string{
				"move_left": {"j", "Home"},
				"jump":      {"space", "Enter"},
			},
			check: map[Code]Command{
				RuneCode('j'):           CommandMoveLeft,
				KeyCode(tcell.KeyHome):  CommandMoveLeft,
				RuneCode(' '):           CommandJump,
				KeyCode(tcell.KeyEnter): CommandJump,
			},
		},
		"case folded": {
			sections: map[string][]string{"MOVE_RIGHT": {"X"}},
			check:    map[Code]Command{RuneCode('x'): CommandMoveRight},
		},
		"unknown command": {
			sections: map[string][]string{"dash": {"x"}},
			expErr:   "unknown command",
		},
		"invalid key": {
			sections: map[string][]string{"jump": {"hyperspace"}},
			expErr:   "invalid key",
		},
		"reserved digit": {
			sections: map[string][]string{"jump": {"3"}},
			expErr:   "reserved",
		},
		"escape is not bindable": {
			sections: map[string][]string{"jump": {"Esc"}},
			expErr:   "invalid key",
		},
		"conflicting bindings": {
			sections: map[string][]string{"jump": {"x"}, "move_left": {"x"}},
			expErr:   "already bound",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			kt, err := LoadKeyConfig(tt.sections)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for code, want := range tt.check {
				testutil.AssertEqual(t, "binding", kt.Lookup(code), want)
			}
		})
	}
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override, err := LoadKeyConfig(map[string][]string{
		"none": {"w", "k"},
		"jump": {"j"},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	merged := MergeKeyTable(base, override)

	testutil.AssertEqual(t, "unbound w", merged.Handles(RuneCode('w')), false)
	testutil.AssertEqual(t, "unbound k", merged.Handles(RuneCode('k')), false)
	testutil.AssertEqual(t, "new j", merged.Lookup(RuneCode('j')), CommandJump)
	testutil.AssertEqual(t, "arrow kept", merged.Lookup(KeyCode(tcell.KeyUp)), CommandJump)
	testutil.AssertEqual(t, "base untouched", base.Handles(RuneCode('w')), true)
	testutil.AssertEqual(t, "size", merged.Len(), base.Len()-1)
}

func TestCommandNames(t *testing.T) {
	names := CommandNames()
	testutil.AssertEqual(t, "count", len(names), 4)
	testutil.AssertEqual(t, "sorted first", names[0], "jump")

	cmd, ok := CommandByName(" Move_Left ")
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "command", cmd, CommandMoveLeft)
}
