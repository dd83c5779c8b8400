package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/threecards/internal/deck"
	"github.com/lox/threecards/internal/evaluator"
	"github.com/lox/threecards/internal/game"
)

// Model is the Bubble Tea model for an interactive game. It owns no game
// rules; every command is forwarded to the session and the result rendered.
type Model struct {
	session *game.Session
	names   [game.NumPlayers]string
	logger  *log.Logger

	// UI components
	logViewport  viewport.Model
	commandInput textinput.Model

	// State
	gameLog     []logEntry
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool
}

type logEntry struct {
	text  string
	style lipgloss.Style
}

// NewModel creates a model driving session. names are the display names of
// player 1 and player 2.
func NewModel(session *game.Session, names [game.NumPlayers]string, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "draw, reset, help or quit (Enter alone draws)"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		session:      session,
		names:        names,
		logger:       logger.WithPrefix("tui"),
		logViewport:  vp,
		commandInput: ti,
		focusedPane:  1,
	}
	m.addLog(fmt.Sprintf("New game %s. Type 'draw' to deal.", session.ID()), InfoStyle)
	return m
}

// Run starts the program and blocks until the user quits
func Run(session *game.Session, names [game.NumPlayers]string, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(session, names, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.commandInput.Focus()
			} else {
				m.focusedPane = 0
				m.commandInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := m.commandInput.Value()
				m.commandInput.SetValue("")
				if quit := m.Execute(input); quit {
					m.quitting = true
					return m, tea.Quit
				}
				m.logViewport.GotoBottom()
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.commandInput, cmd = m.commandInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Letters typed into the input must not trigger the viewport's keymap
	if _, isKey := msg.(tea.KeyMsg); !isKey || m.focusedPane == 0 {
		m.logViewport, cmd = m.logViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// Execute runs one typed command against the session and reports whether
// the user asked to quit.
func (m *Model) Execute(input string) (quit bool) {
	switch command := strings.ToLower(strings.TrimSpace(input)); command {
	case "", "d", "draw":
		m.draw()
	case "r", "reset", "new":
		m.reset()
	case "h", "help", "?":
		m.addLog("Commands: draw (d), reset (r), help (h), quit (q). Enter alone draws.", InfoStyle)
	case "q", "quit", "exit":
		return true
	default:
		m.addLog(fmt.Sprintf("Unknown command %q. Type 'help' for commands.", command), ErrorStyle)
	}
	return false
}

func (m *Model) draw() {
	result, err := m.session.Draw()
	if errors.Is(err, deck.ErrInsufficientCards) {
		m.logger.Info("Draw refused", "remaining", m.session.DeckSize())
		m.addLog(fmt.Sprintf("Not enough cards left in deck (%d remaining)! Type 'reset' to start a new game.", m.session.DeckSize()), ErrorStyle)
		return
	}
	if err != nil {
		m.logger.Error("Draw failed", "error", err)
		m.addLog(err.Error(), ErrorStyle)
		return
	}

	m.addLog(fmt.Sprintf("Round %d", result.Number), HandInfoStyle)
	for _, p := range game.Players {
		b := evaluator.Evaluate(result.Hand(p))
		m.addLog(fmt.Sprintf("  %s: %s  %s", m.names[p], deck.FormatCards(result.Hand(p)), b), GameLogStyle)
	}
	if winner, ok := result.Outcome.Winner(); ok {
		m.addLog(fmt.Sprintf("  %s wins the round", m.names[winner]), SuccessStyle)
	} else {
		m.addLog("  Tie, no point awarded", WarningStyle)
	}
	if !m.session.CanDraw() {
		m.addLog(fmt.Sprintf("Deck exhausted with %d cards left. Type 'reset' for a new game.", m.session.DeckSize()), WarningStyle)
	}

	m.logger.Info("Round drawn",
		"round", result.Number,
		"outcome", result.Outcome,
		"p1_total", m.session.Score(game.Player1),
		"p2_total", m.session.Score(game.Player2))
}

func (m *Model) reset() {
	m.session.Reset()
	m.addLog(fmt.Sprintf("New game %s. Scores cleared and deck reshuffled.", m.session.ID()), InfoStyle)
	m.logger.Info("Game reset", "id", m.session.ID())
}

func (m *Model) addLog(text string, style lipgloss.Style) {
	m.gameLog = append(m.gameLog, logEntry{text: text, style: style})
}

// Log returns the plain text of every log line, oldest first
func (m *Model) Log() []string {
	lines := make([]string, len(m.gameLog))
	for i, e := range m.gameLog {
		lines[i] = e.text
	}
	return lines
}

// Quitting reports whether the user has asked to leave
func (m *Model) Quitting() bool {
	return m.quitting
}
