package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandrolain/gocalc"
	"github.com/sandrolain/gocalc/pkg/history"
)

// maxTranscriptLines bounds the kept transcript so long sessions do not
// grow memory without limit.
const maxTranscriptLines = 500

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// replModel is the bubbletea model for the interactive calculator.
type replModel struct {
	calc       *gocalc.Calculator
	store      history.Store
	input      textinput.Model
	transcript []string
	quitting   bool
}

func newReplModel(calc *gocalc.Calculator, store history.Store) replModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("> ")
	ti.Placeholder = "1 + 2 * 3"
	ti.CharLimit = 256
	ti.Width = 64
	ti.Focus()

	return replModel{
		calc:  calc,
		store: store,
		input: ti,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.appendLine("Exiting gocalc.")
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		line := m.input.Value()
		m.input.SetValue("")
		if strings.TrimSpace(line) == "" {
			return m, nil
		}

		m.appendLine(echoStyle.Render("> " + line))
		output, quit := execLine(m.calc, m.store, line)
		if output != "" {
			m.appendLine(styleOutput(output))
		}
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) View() string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render(banner))
	b.WriteString("\n\n")
	if len(m.transcript) > 0 {
		b.WriteString(strings.Join(m.transcript, "\n"))
		b.WriteString("\n")
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("history · clear · quit · ctrl+c to exit"))
	b.WriteString("\n")
	return b.String()
}

// appendLine adds output lines to the transcript, trimming the oldest
// entries past the cap.
func (m *replModel) appendLine(line string) {
	m.transcript = append(m.transcript, strings.Split(line, "\n")...)
	if over := len(m.transcript) - maxTranscriptLines; over > 0 {
		m.transcript = m.transcript[over:]
	}
}

// styleOutput colors evaluation errors and results differently.
func styleOutput(output string) string {
	if strings.HasPrefix(output, "Error:") {
		return errorStyle.Render(output)
	}
	if strings.HasPrefix(output, "(no history)") ||
		strings.HasPrefix(output, "History cleared.") ||
		strings.HasPrefix(output, "Goodbye.") {
		return echoStyle.Render(output)
	}
	return resultStyle.Render(output)
}

// runTUI runs the interactive calculator until the user quits.
func runTUI(calc *gocalc.Calculator, store history.Store) error {
	p := tea.NewProgram(newReplModel(calc, store))
	_, err := p.Run()
	return err
}
