// Package chat provides the interactive terminal chat for asking
// questions about the indexed transcript.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driving"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	snippetStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// snippetLength bounds context excerpts shown under an answer.
const snippetLength = 200

// answerReceived carries the result of an Ask back into the update
// loop.
type answerReceived struct {
	question string
	text     string
	snippets []string
	err      error
}

// Model is the bubbletea model for the chat session.
type Model struct {
	analyst driving.Analyst
	ctx     context.Context

	input      textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	transcript strings.Builder

	width    int
	height   int
	ready    bool
	thinking bool
}

// NewModel creates a chat model bound to the analyst.
func NewModel(ctx context.Context, analyst driving.Analyst) *Model {
	input := textinput.New()
	input.Placeholder = "Ask about the transcript (exit to quit)"
	input.Focus()
	input.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		analyst: analyst,
		ctx:     ctx,
		input:   input,
		spinner: sp,
	}
}

// Init starts the input cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 4
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.transcript.String())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case answerReceived:
		m.thinking = false
		m.appendExchange(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.thinking {
			return m, nil
		}
		question := strings.TrimSpace(m.input.Value())
		if question == "" {
			return m, nil
		}
		if isQuitCommand(question) {
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.thinking = true
		return m, tea.Batch(m.spinner.Tick, m.ask(question))

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask runs the question against the analyst off the update loop.
func (m *Model) ask(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.analyst.Ask(m.ctx, question)
		if err != nil {
			return answerReceived{question: question, err: err}
		}

		snippets := make([]string, len(answer.Context))
		for i, rc := range answer.Context {
			snippets[i] = truncate(rc.Chunk.Text)
		}
		return answerReceived{
			question: question,
			text:     answer.Text,
			snippets: snippets,
		}
	}
}

// appendExchange adds a completed question/answer pair to the
// transcript view.
func (m *Model) appendExchange(msg answerReceived) {
	fmt.Fprintf(&m.transcript, "%s\n", questionStyle.Render("You: "+msg.question))

	if msg.err != nil {
		fmt.Fprintf(&m.transcript, "%s\n\n", errorStyle.Render("Error: "+msg.err.Error()))
	} else {
		fmt.Fprintf(&m.transcript, "%s\n", answerStyle.Render(msg.text))
		for i, snippet := range msg.snippets {
			fmt.Fprintf(&m.transcript, "%s\n", snippetStyle.Render(fmt.Sprintf("  [%d] %s", i+1, snippet)))
		}
		m.transcript.WriteString("\n")
	}

	if m.ready {
		m.viewport.SetContent(m.transcript.String())
		m.viewport.GotoBottom()
	}
}

// View renders the chat screen.
func (m *Model) View() string {
	if !m.ready {
		return "Starting chat..."
	}

	var status string
	if m.thinking {
		status = m.spinner.View() + " Thinking..."
	} else {
		status = helpStyle.Render("enter: ask · exit/quit: leave · esc: quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.input.View(),
		status,
	)
}

// isQuitCommand reports whether the input asks to leave the chat.
func isQuitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		return true
	}
	return false
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLength {
		return text
	}
	return string(runes[:snippetLength]) + "..."
}

// Run starts the chat program and blocks until the user exits.
func Run(ctx context.Context, analyst driving.Analyst) error {
	program := tea.NewProgram(NewModel(ctx, analyst), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
