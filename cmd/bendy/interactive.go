package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eugenesimakin/bendy/digest"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	digestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type playgroundModel struct {
	err      error
	encoded  string
	sum      string
	input    textinput.Model
	size     int
	maxDepth int
}

func newPlaygroundModel(maxDepth int) *playgroundModel {
	ti := textinput.New()
	ti.Placeholder = `{"announce": "http://tracker.example", "length": 42}`
	ti.Focus()
	ti.Width = 80
	return &playgroundModel{input: ti, maxDepth: maxDepth}
}

func (m *playgroundModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reencode()
	return m, cmd
}

func (m *playgroundModel) reencode() {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		m.err = nil
		m.encoded = ""
		m.sum = ""
		m.size = 0
		return
	}

	data, err := encodeJSON([]byte(line), m.maxDepth)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.encoded = strconv.Quote(string(data))
	m.sum = digest.Hex(digest.SumBytes(data))
	m.size = len(data)
}

func (m *playgroundModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bendy playground"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	case m.encoded != "":
		b.WriteString(labelStyle.Render("bencode ") + resultStyle.Render(m.encoded))
		b.WriteByte('\n')
		b.WriteString(labelStyle.Render("bytes   ") + resultStyle.Render(fmt.Sprintf("%d", m.size)))
		b.WriteByte('\n')
		b.WriteString(labelStyle.Render("blake3  ") + digestStyle.Render(m.sum))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("type a JSON document • esc quits"))
	b.WriteByte('\n')
	return b.String()
}

func runInteractive(maxDepth int) error {
	p := tea.NewProgram(newPlaygroundModel(maxDepth))
	_, err := p.Run()
	return err
}
