package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Action
	}{
		{"q quits", keyMsg('q'), ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, ActionQuit},
		{"p pauses", keyMsg('p'), ActionPause},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionPause},
		{"r restarts", keyMsg('r'), ActionRestart},
		{"unbound key", keyMsg('x'), ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%s) = %d, expected %d", tc.msg.String(), got, tc.expected)
			}
		})
	}
}
