package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/wordgarden/internal/assets"
	"github.com/vovakirdan/wordgarden/internal/config"
	"github.com/vovakirdan/wordgarden/internal/garden"
	"github.com/vovakirdan/wordgarden/internal/storage"
)

// Options configures a garden Model.
type Options struct {
	Config  config.GardenConfig
	Seed    int64 // Word shuffle seed; 0 means time-based
	Player  string
	Store   *storage.Store // Optional round journal
	Catalog *assets.Catalog
	Sound   assets.Player // Defaults to a bell player on Bell
	Bell    io.Writer     // Terminal bells for sounds; nil is silent
	Logger  *log.Logger
	Width   int
	Height  int

	// ServerWide makes the history screen list recent rounds from every
	// session instead of only this one.
	ServerWide bool
}

// Model is the Bubble Tea model for a Word Garden session.
type Model struct {
	session   garden.Session
	sessionID string
	player    string

	store   *storage.Store
	catalog *assets.Catalog
	sound   assets.Player
	logger  *log.Logger

	input  textinput.Model
	keys   KeyMap
	help   help.Model
	styles Styles

	image    string // Image key currently on screen
	imageGen int    // Bumped whenever a pending delayed image becomes stale
	caption  string // Caption of the last sound played

	history     HistoryModel
	showHistory bool
	serverWide  bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a garden model and starts its first round.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Catalog == nil {
		catalog, err := assets.Load(opts.Logger)
		if err != nil {
			return Model{}, err
		}
		opts.Catalog = catalog
	}
	if opts.Sound == nil {
		opts.Sound = assets.NewBellPlayer(opts.Catalog, opts.Bell)
	}

	session, err := opts.Config.NewSession(opts.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot start session: %w", err)
	}

	styles := DefaultStyles()

	input := textinput.New()
	input.Prompt = "Guess a Letter: "
	input.PromptStyle = styles.Prompt
	input.Placeholder = "_"
	input.CharLimit = 0 // Sanitizing keeps only the last letter
	input.Width = 2
	input.Focus()

	return Model{
		session:    session,
		sessionID:  uuid.NewString(),
		player:     opts.Player,
		store:      opts.Store,
		catalog:    opts.Catalog,
		sound:      opts.Sound,
		logger:     opts.Logger,
		input:      input,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     styles,
		image:      session.ImageKey(),
		serverWide: opts.ServerWide,
		width:      opts.Width,
		height:     opts.Height,
	}, nil
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showHistory {
			m.history = m.history.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case imageMsg:
		if msg.gen == m.imageGen {
			m.image = msg.key
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHistory {
		return m.updateHistory(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.History):
		m.openHistory()
		return m, nil
	}

	if m.session.AcceptsGuesses() {
		if key.Matches(msg, m.keys.Guess) {
			return m.submitGuess()
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.input.SetValue(garden.SanitizeGuess(m.input.Value()))
		m.input.CursorEnd()
		return m, cmd
	}

	if key.Matches(msg, m.keys.PlayAgain) {
		return m.playAgain()
	}
	return m, nil
}

// submitGuess forwards the sanitized letter to the session.
func (m Model) submitGuess() (tea.Model, tea.Cmd) {
	letter := garden.SanitizeGuess(m.input.Value())
	if letter == "" {
		// Submission is disabled while the field is empty.
		return m, nil
	}

	next, cues, err := m.session.SubmitGuess(letter)
	if err != nil {
		m.logger.Error("guess rejected", "letter", letter, "error", err)
		return m, nil
	}
	m.session = next
	m.input.Reset()

	cmd := m.playCues(cues)

	if next.Outcome() != garden.InProgress {
		m.input.Blur()
		m.recordRound()
	}
	return m, cmd
}

// playCues plays sounds and shows images in order.
// Delayed images are scheduled and tagged with the current generation.
func (m *Model) playCues(cues []garden.Cue) tea.Cmd {
	var cmds []tea.Cmd
	bumped := false
	for _, cue := range cues {
		switch cue.Kind {
		case garden.CueSound:
			if caption := m.sound.Play(cue.Name); caption != "" {
				m.caption = caption
			}
		case garden.CueImage:
			if !bumped {
				m.imageGen++
				bumped = true
			}
			if cue.Delay <= 0 {
				m.image = cue.Name
				continue
			}
			cmds = append(cmds, showImageAfter(cue.Delay, cue.Name, m.imageGen))
		}
	}
	return tea.Batch(cmds...)
}

// playAgain advances to the next word, or restarts after the last one.
func (m Model) playAgain() (tea.Model, tea.Cmd) {
	m.session = m.session.AdvanceOrRestart()
	m.image = m.session.ImageKey()
	m.imageGen++
	m.caption = ""
	m.input.Reset()
	cmd := m.input.Focus()
	return m, tea.Batch(cmd, textinput.Blink)
}

// recordRound journals the round that just finished.
func (m Model) recordRound() {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRound(storage.RoundRecord{
		SessionID: m.sessionID,
		Player:    m.player,
		Word:      m.session.Target(),
		Outcome:   m.session.Outcome().String(),
		Guesses:   len(m.session.Guessed()),
		Misses:    m.session.Misses(),
	})
	if err != nil {
		// Best-effort; the game continues regardless.
		m.logger.Warn("cannot record round", "error", err)
	}
}

// openHistory loads the journal into the history screen.
func (m *Model) openHistory() {
	var rounds []storage.RoundRecord
	summary := summarizeRounds(nil)
	var err error
	switch {
	case m.store == nil:
	case m.serverWide:
		rounds, err = m.store.RecentRounds(maxHistoryRounds)
		summary = summarizeRounds(rounds)
	default:
		rounds, err = m.store.SessionRounds(m.sessionID)
		if err == nil {
			var sum storage.SessionSummary
			sum, err = m.store.Summary(m.sessionID)
			summary = formatSummary(sum)
		}
	}
	if err != nil {
		m.logger.Warn("cannot load history", "error", err)
	}

	m.history = NewHistoryModel(rounds, summary, m.serverWide, m.width, m.height)
	m.showHistory = true
}

// updateHistory handles keys while the history screen is open.
func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.history.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.history.keys.Back):
		m.showHistory = false
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	s := m.styles
	width := m.width

	counters := spread(width-2,
		s.Counter.Render(fmt.Sprintf("Words Guessed: %d\nWords Missed: %d",
			m.session.WordsGuessed(), m.session.WordsMissed())),
		s.Counter.Align(lipgloss.Right).Render(fmt.Sprintf("Words to Guess: %d\nWords in Game: %d",
			m.session.WordsRemaining(), m.session.WordsInGame())),
	)

	var control string
	if m.session.AcceptsGuesses() {
		control = m.input.View()
	} else {
		control = s.Button.Render(m.session.PlayAgainLabel())
	}

	art := m.catalog.Art(m.image)
	if strings.HasPrefix(m.image, "wilt") {
		art = s.Wilt.Render(art)
	} else {
		art = s.Flower.Render(art)
	}

	statusWidth := max(width-4, 20)
	lines := []string{
		" " + counters,
		"",
		center(width, s.Status.Width(statusWidth).Render(m.session.Status())),
		"",
		center(width, s.Reveal.Render(m.session.Reveal())),
		"",
		center(width, control),
		center(width, s.Caption.Render(m.caption)),
		center(width, art),
		"",
		center(width, m.help.View(m.keys.forGuessing(m.session.AcceptsGuesses()))),
	}
	return strings.Join(lines, "\n")
}

// Session returns the current game snapshot.
func (m Model) Session() garden.Session {
	return m.session
}

// SessionID returns the journal id of this session.
func (m Model) SessionID() string {
	return m.sessionID
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
