package input

import (
	"slices"
	"strings"
)

// commandRegistry maps canonical command names to commands
// Used by the key config loader to resolve binding sections
var commandRegistry = map[string]Command{
	// Unbind sentinel
	"none": CommandNone,

	"move_left":  CommandMoveLeft,
	"move_right": CommandMoveRight,
	"jump":       CommandJump,
}

// CommandByName resolves a canonical command name, case-insensitive
func CommandByName(name string) (Command, bool) {
	cmd, ok := commandRegistry[strings.ToLower(strings.TrimSpace(name))]
	return cmd, ok
}

// CommandNames returns all registered command names, sorted
func CommandNames() []string {
	names := make([]string, 0, len(commandRegistry))
	for name := range commandRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
