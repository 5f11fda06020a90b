package input

// State aggregates held movement keys into a queryable snapshot
// Mutated only between ticks, read-only while a tick runs
type State struct {
	table *KeyTable
	held  map[Code]Command
}

// NewState creates an empty state bound to a key table
func NewState(table *KeyTable) *State {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &State{
		table: table,
		held:  make(map[Code]Command),
	}
}

// RegisterKeyDown marks the key's command active, unbound codes are ignored
func (s *State) RegisterKeyDown(code Code) {
	cmd := s.table.Lookup(code)
	if cmd == CommandNone {
		return
	}
	s.held[code] = cmd
}

// RegisterKeyUp releases the key, the command stays active while another bound key holds it
func (s *State) RegisterKeyUp(code Code) {
	delete(s.held, code)
}

// IsActive reports whether any key bound to cmd is held
func (s *State) IsActive(cmd Command) bool {
	for _, c := range s.held {
		if c == cmd {
			return true
		}
	}
	return false
}

// ActiveDirection resolves horizontal input: left wins over right
func (s *State) ActiveDirection() int {
	if s.IsActive(CommandMoveLeft) {
		return -1
	}
	if s.IsActive(CommandMoveRight) {
		return 1
	}
	return 0
}

// IsJumpRequested reports whether jump is held
func (s *State) IsJumpRequested() bool {
	return s.IsActive(CommandJump)
}

// Clear releases every key
func (s *State) Clear() {
	clear(s.held)
}
