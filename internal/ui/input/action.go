package input

// Action is the closed set of semantic inputs widgets react to. Widgets never look at raw
// key codes.
type Action int

const (
	None Action = iota
	Up          //nolint:varnamelen
	Down
	Left
	Right
	Toggle
	Play
)

// Actions lists every semantic action in resolution order.
var Actions = []Action{Up, Down, Left, Right, Toggle, Play} //nolint:gochecknoglobals

func (a Action) String() string {
	switch a {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Toggle:
		return "toggle"
	case Play:
		return "play"
	default:
		return "none"
	}
}

// Event is a raw key press together with the action it resolved to.
type Event struct {
	Key    string
	Action Action
}

// Is reports whether the event carries the given action. None never matches.
func (e Event) Is(action Action) bool {
	return action != None && e.Action == action
}

func (e Event) String() string {
	return e.Key
}

// Key is a raw key name using bubbletea naming, e.g. "up", "tab", "ctrl+c" or "q".
type Key string

func (k Key) String() string {
	return string(k)
}
