package input

// Command is a movement command drawn from the fixed alphabet
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandJump
)

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandJump:
		return "Jump"
	default:
		return "None"
	}
}
