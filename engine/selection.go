package engine

// SelectionSource identifies which writer set the active selection
type SelectionSource uint8

const (
	SourceProximity SelectionSource = iota
	SourceDirect
)

func (s SelectionSource) String() string {
	switch s {
	case SourceProximity:
		return "proximity"
	case SourceDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// SelectionEvent describes one write to the active selection
// Proximity writes repeat every tick while in range, Changed marks the ones that altered the value
type SelectionEvent struct {
	ID       string
	Previous string
	Source   SelectionSource
	Tick     uint64
	Changed  bool
}

// SelectionListener receives selection writes synchronously on the writer's goroutine
type SelectionListener func(SelectionEvent)
