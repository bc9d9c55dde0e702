package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// Terminal 基于 bubbletea 的确认
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal 创建终端确认
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Confirm 实现 Confirmer
func (t *Terminal) Confirm(question string) (bool, error) {
	p := tea.NewProgram(
		newConfirmModel(question),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run prompt: %w", err)
	}

	m := final.(confirmModel)
	if m.interrupted {
		return false, ErrInterrupted
	}
	return m.answer, nil
}

// confirmModel 确认界面模型
type confirmModel struct {
	question    string
	input       textinput.Model
	answer      bool
	done        bool
	interrupted bool
}

func newConfirmModel(question string) confirmModel {
	ti := textinput.New()
	ti.Placeholder = "y/N"
	ti.CharLimit = 3
	ti.Prompt = ""
	ti.Focus()

	return confirmModel{
		question: question,
		input:    ti,
	}
}

// Init 初始化
func (m confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update 更新状态
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.interrupted = true
		m.done = true
		return m, tea.Quit
	case "esc":
		m.done = true
		return m, tea.Quit
	case "enter":
		m.answer = IsYes(m.input.Value())
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View 渲染视图
func (m confirmModel) View() string {
	if m.done {
		answer := "no"
		if m.answer {
			answer = "yes"
		}
		return questionStyle.Render(m.question) + " " + hintStyle.Render(answer) + "\n"
	}
	return questionStyle.Render(m.question) + " " + m.input.View() + "\n"
}
