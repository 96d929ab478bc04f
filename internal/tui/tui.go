package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/tatianab/number-game/internal/config"
	"github.com/tatianab/number-game/internal/engine"
	"github.com/tatianab/number-game/internal/models"
)

// SessionFactory creates the puzzle to play.
type SessionFactory func(ctx context.Context) (*engine.Session, error)

type sessionState int

const (
	stateLoading sessionState = iota
	statePlaying
	stateError
)

type model struct {
	state      sessionState
	newSession SessionFactory
	session    *engine.Session
	snapshot   models.Snapshot
	textInput  textinput.Model
	lastInput  string
	err        error
	logger     zerolog.Logger
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	guessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	satisfiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F"))

	failingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

func newModel(newSession SessionFactory, logger zerolog.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "Type a number..."
	ti.Focus()
	ti.CharLimit = 24
	ti.Width = 24

	return model{
		state:      stateLoading,
		newSession: newSession,
		textInput:  ti,
		logger:     logger,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startSession())
}

type sessionReadyMsg struct {
	session *engine.Session
}

type errMsg struct {
	err error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.state = stateLoading
			m.session = nil
			m.textInput.Reset()
			m.lastInput = ""
			return m, m.startSession()
		}

	case sessionReadyMsg:
		m.session = msg.session
		m.snapshot = msg.session.Snapshot()
		m.state = statePlaying
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil
	}

	if m.state != statePlaying {
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	if value := m.textInput.Value(); value != m.lastInput {
		m.lastInput = value
		m = m.guess(value)
	}
	return m, cmd
}

// guess feeds the current input to the session. Input that is not a number
// leaves the previous snapshot on screen.
func (m model) guess(text string) model {
	snap, err := m.session.OnGuess(text)
	if err != nil && !errors.Is(err, engine.ErrParse) {
		m.logger.Error().Err(err).Msg("guess failed")
		return m
	}
	m.snapshot = snap
	return m
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateLoading:
		s = "\n  Picking a number... please wait.\n"

	case statePlaying:
		parts := []string{
			titleStyle.Render("Guess the Number"),
			"",
			m.textInput.View(),
			guessStyle.Render(fmt.Sprintf("Your guess: %d", m.snapshot.Guess)),
			"",
		}
		if m.snapshot.Won {
			parts = append(parts, winStyle.Render("You win! Every condition holds."), "")
		}
		parts = append(parts, renderConditions(m.snapshot)...)
		if m.snapshot.Remaining > 0 {
			parts = append(parts, "", guessStyle.Render(hiddenCount(m.snapshot.Remaining)))
		}
		parts = append(parts, "", helpStyle.Render("ctrl+r: new number, esc: quit"))
		s = lipgloss.JoinVertical(lipgloss.Left, parts...)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func renderConditions(snap models.Snapshot) []string {
	lines := make([]string, 0, len(snap.Conditions))
	for _, c := range snap.Conditions {
		if c.Satisfied {
			lines = append(lines, satisfiedStyle.Render("✓ "+c.Text))
		} else {
			lines = append(lines, failingStyle.Render("✗ "+c.Text))
		}
	}
	return lines
}

func hiddenCount(n int) string {
	if n == 1 {
		return "1 condition still hidden"
	}
	return fmt.Sprintf("%d conditions still hidden", n)
}

func (m model) startSession() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		session, err := m.newSession(ctx)
		if err != nil {
			return errMsg{err}
		}
		return sessionReadyMsg{session}
	}
}

func Run(newSession SessionFactory, logger zerolog.Logger) error {
	p := tea.NewProgram(newModel(newSession, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start loads the configuration from the environment and runs the game.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return StartWithConfig(cfg)
}

// StartWithConfig builds the engine described by cfg and runs the game.
func StartWithConfig(cfg *config.Config) error {
	logger, closeLog, err := cfg.Logger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := engine.NewEngine(cfg.Rules, engine.NewRandSource(cfg.Seed), logger)
	if err != nil {
		return err
	}

	newSession := SessionFactory(eng.NewSession)
	if cfg.Daily {
		newSession = func(ctx context.Context) (*engine.Session, error) {
			return eng.NewDailySession(ctx, cfg.DailySalt, time.Now())
		}
	}
	return Run(newSession, logger)
}
