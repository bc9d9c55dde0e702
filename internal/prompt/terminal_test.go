package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeKeys(m confirmModel, keys ...tea.KeyMsg) confirmModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(confirmModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel(t *testing.T) {
	testCases := []struct {
		name        string
		keys        []tea.KeyMsg
		answer      bool
		interrupted bool
	}{
		{name: "yes", keys: []tea.KeyMsg{runes("y"), {Type: tea.KeyEnter}}, answer: true},
		{name: "yes word", keys: []tea.KeyMsg{runes("yes"), {Type: tea.KeyEnter}}, answer: true},
		{name: "no", keys: []tea.KeyMsg{runes("n"), {Type: tea.KeyEnter}}},
		{name: "default", keys: []tea.KeyMsg{{Type: tea.KeyEnter}}},
		{name: "escape", keys: []tea.KeyMsg{runes("y"), {Type: tea.KeyEsc}}},
		{name: "ctrl+c", keys: []tea.KeyMsg{{Type: tea.KeyCtrlC}}, interrupted: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := typeKeys(newConfirmModel("Reset?"), tc.keys...)
			assert.True(t, m.done)
			assert.Equal(t, tc.answer, m.answer)
			assert.Equal(t, tc.interrupted, m.interrupted)
		})
	}
}

func TestConfirmModelView(t *testing.T) {
	m := newConfirmModel("Reset?")
	assert.Contains(t, m.View(), "Reset?")

	m = typeKeys(m, runes("y"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "yes")
}
