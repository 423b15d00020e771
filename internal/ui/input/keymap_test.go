package input_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/ui/input"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		msg    tea.KeyMsg
		action input.Action
	}{
		{msg: tea.KeyMsg{Type: tea.KeyUp}, action: input.Up},
		{msg: tea.KeyMsg{Type: tea.KeyDown}, action: input.Down},
		{msg: tea.KeyMsg{Type: tea.KeyLeft}, action: input.Left},
		{msg: tea.KeyMsg{Type: tea.KeyRight}, action: input.Right},
		{msg: tea.KeyMsg{Type: tea.KeyTab}, action: input.Toggle},
		{msg: tea.KeyMsg{Type: tea.KeyEnter}, action: input.Play},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, action: input.None},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, action: input.None},
	}

	for _, testCase := range cases {
		event := input.Default.Resolve(testCase.msg)
		require.Equal(t, testCase.action, event.Action, testCase.msg.String())
		require.Equal(t, testCase.msg.String(), event.Key)
	}
}

func TestEventIs(t *testing.T) {
	event := input.Default.Resolve(input.Key("right"))
	require.True(t, event.Is(input.Right))
	require.False(t, event.Is(input.Left))

	unbound := input.Default.Resolve(input.Key("z"))
	require.False(t, unbound.Is(input.None))
}

func TestFromConfig(t *testing.T) {
	keyMap := input.FromConfig(config.Keys{Right: []string{"l", "right"}, Quit: []string{"x"}})

	require.True(t, keyMap.Resolve(input.Key("l")).Is(input.Right))
	require.True(t, keyMap.Resolve(input.Key("right")).Is(input.Right))
	require.True(t, keyMap.Resolve(input.Key("up")).Is(input.Up), "unset actions keep defaults")
	require.Equal(t, "More", keyMap.Right.Help().Desc)
	require.Equal(t, []string{"x"}, keyMap.Quit.Keys())
}

func TestHelp(t *testing.T) {
	footer := input.Default.Help()
	require.NotEmpty(t, footer)
	require.Equal(t, "↑", footer[0].Help().Key)
	require.Less(t, len(footer), len(input.Default.FullHelp()))

	rebound := input.FromConfig(config.Keys{Up: []string{"k"}})
	require.Equal(t, "k", rebound.Help()[0].Help().Key)
}

func TestKeyName(t *testing.T) {
	cases := []struct {
		event *tcell.EventKey
		name  string
	}{
		{event: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), name: "up"},
		{event: tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), name: "tab"},
		{event: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), name: "enter"},
		{event: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), name: "ctrl+c"},
		{event: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), name: "q"},
	}

	for _, testCase := range cases {
		require.Equal(t, testCase.name, input.KeyName(testCase.event))
	}

	require.True(t, input.Default.Resolve(input.Key(input.KeyName(
		tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))).Is(input.Right))
}
