package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/glance/internal/gemini"
	"github.com/dshills/glance/internal/review"
	"github.com/dshills/glance/internal/selection"
)

const questionHeight = 3

// answerMsg carries what the interaction displayed.
type answerMsg struct {
	text    string
	isError bool
}

// doneMsg marks the end of a review; the panel returns to Idle.
type doneMsg struct {
	kind gemini.Kind
}

type model struct {
	label     string
	language  string
	codeLines []string
	firstLine int
	mode      review.Mode

	question textarea.Model
	code     viewport.Model
	answer   viewport.Model
	spinner  spinner.Model

	// send starts a review for the given question.
	send func(question string) tea.Cmd

	inFlight      bool
	answerText    string
	answerIsError bool
	width, height int
}

func newModel(sel selection.Selection, mode review.Mode, send func(string) tea.Cmd) model {
	ta := textarea.New()
	ta.Placeholder = "Ask about the selected code (optional)..."
	if mode.RequiresQuestion() {
		ta.Placeholder = "Ask about the selected code..."
	}
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(questionHeight)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	first := sel.StartLine
	if first == 0 {
		first = 1
	}

	return model{
		label:     sel.Label(),
		language:  review.DetectLanguage(sel.Path()),
		codeLines: highlightLines(sel.Path(), sel.Text),
		firstLine: first,
		mode:      mode,
		question:  ta,
		code:      viewport.New(0, 0),
		answer:    viewport.New(0, 0),
		spinner:   sp,
		send:      send,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			if m.inFlight {
				return m, nil
			}
			m.inFlight = true
			m.question.Blur()
			return m, tea.Batch(m.send(m.question.Value()), m.spinner.Tick)
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.answer, cmd = m.answer.Update(msg)
			return m, cmd
		case "shift+up":
			m.code.ScrollUp(1)
			return m, nil
		case "shift+down":
			m.code.ScrollDown(1)
			return m, nil
		}
		if m.inFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.question, cmd = m.question.Update(msg)
		return m, cmd

	case answerMsg:
		m.answerText = msg.text
		m.answerIsError = msg.isError
		m.refreshAnswer()
		return m, nil

	case doneMsg:
		m.inFlight = false
		return m, m.question.Focus()

	case spinner.TickMsg:
		if !m.inFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.question, cmd = m.question.Update(msg)
	return m, cmd
}

// paneSize returns the inner width and height of each of the two panes.
func (m model) paneSize() (int, int) {
	// two borders plus padding per pane
	w := m.width/2 - 4
	// question box, its border, the status line, pane border and title
	h := m.height - questionHeight - 2 - 1 - 2 - 1
	return max(w, 10), max(h, 3)
}

func (m *model) layout() {
	w, h := m.paneSize()
	m.code.Width = w
	m.code.Height = h
	m.code.SetContent(m.renderCode(w))
	m.answer.Width = w
	m.answer.Height = h
	m.question.SetWidth(max(m.width-4, 10))
	m.refreshAnswer()
}

func (m *model) refreshAnswer() {
	if m.answerText == "" {
		m.answer.SetContent("")
		return
	}
	style := answerStyle
	if m.answerIsError {
		style = errorStyle
	}
	m.answer.SetContent(style.Width(max(m.answer.Width, 10)).Render(m.answerText))
	m.answer.GotoTop()
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	code := paneStyle.Render(titleStyle.Render(m.label) + "\n" + m.code.View())

	answerTitle := "Review"
	if m.inFlight {
		answerTitle = m.spinner.View() + " Reviewing..."
	}
	answer := paneStyle.Render(titleStyle.Render(answerTitle) + "\n" + m.answer.View())

	questionBox := focusedPaneStyle.Render(m.question.View())
	if m.inFlight {
		questionBox = paneStyle.Render(m.question.View())
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, code, answer)
	return lipgloss.JoinVertical(lipgloss.Left, main, questionBox, m.renderStatus())
}

// renderCode numbers every line of the selection and cuts each to width.
func (m model) renderCode(width int) string {
	var b strings.Builder
	for i, line := range m.codeLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		num := lineNumberStyle.Render(fmt.Sprintf("%d", m.firstLine+i))
		b.WriteString(num)
		b.WriteString(lipgloss.NewStyle().MaxWidth(width - lipgloss.Width(num)).Render(line))
	}
	return b.String()
}

func (m model) renderStatus() string {
	keys := "ctrl+s send • shift+↑/↓ code • pgup/pgdn answer • esc close"
	if m.inFlight {
		keys = "waiting for review • esc close"
	}
	status := fmt.Sprintf(" %s mode • %s", m.mode, keys)
	if m.language != "" {
		status = " " + m.language + " •" + status
	}
	return statusStyle.Render(status)
}
