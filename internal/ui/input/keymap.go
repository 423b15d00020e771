package input

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/gdamore/tcell/v2"
)

type Map struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Play   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

var Default = Map{ //nolint:gochecknoglobals
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "Down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "Less"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "More"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Range/Value"),
	),
	Play: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Play"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
}

// FromConfig builds a Map from the user configured keys. Any action left empty keeps its
// default binding.
func FromConfig(keys config.Keys) Map {
	keyMap := Default
	keyMap.Up = rebind(keyMap.Up, keys.Up)
	keyMap.Down = rebind(keyMap.Down, keys.Down)
	keyMap.Left = rebind(keyMap.Left, keys.Left)
	keyMap.Right = rebind(keyMap.Right, keys.Right)
	keyMap.Toggle = rebind(keyMap.Toggle, keys.Toggle)
	keyMap.Play = rebind(keyMap.Play, keys.Play)
	keyMap.Quit = rebind(keyMap.Quit, keys.Quit)
	keyMap.Help = rebind(keyMap.Help, keys.Help)

	return keyMap
}

func rebind(binding key.Binding, keys []string) key.Binding {
	if len(keys) == 0 {
		return binding
	}

	desc := binding.Help().Desc

	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
}

// Binding returns the binding for a semantic action.
func (m Map) Binding(action Action) (key.Binding, bool) {
	switch action {
	case Up:
		return m.Up, true
	case Down:
		return m.Down, true
	case Left:
		return m.Left, true
	case Right:
		return m.Right, true
	case Toggle:
		return m.Toggle, true
	case Play:
		return m.Play, true
	default:
		return key.Binding{}, false
	}
}

// Resolve maps a raw key to an Event. Keys bound to no action resolve to None.
func (m Map) Resolve(raw fmt.Stringer) Event {
	event := Event{Key: raw.String()}

	for _, action := range Actions {
		binding, _ := m.Binding(action)
		if key.Matches(raw, binding) {
			event.Action = action

			break
		}
	}

	return event
}

// Help lists the bindings shown in the footer.
func (m Map) Help() []key.Binding {
	return []key.Binding{m.Up, m.Down, m.Right, m.Toggle, m.Play, m.Help, m.Quit}
}

// FullHelp lists every binding.
func (m Map) FullHelp() []key.Binding {
	return []key.Binding{m.Up, m.Down, m.Left, m.Right, m.Toggle, m.Play, m.Help, m.Quit}
}

// KeyName converts a tcell key event to the bubbletea key naming used by Map.
func KeyName(event *tcell.EventKey) string {
	switch event.Key() {
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl+" + strings.ToLower(string(event.Rune()))
		}

		return string(event.Rune())
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEsc:
		return "esc"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	default:
		return strings.ToLower(strings.ReplaceAll(event.Name(), "-", "+"))
	}
}
