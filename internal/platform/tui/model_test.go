package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordgarden/internal/config"
	"github.com/vovakirdan/wordgarden/internal/garden"
	"github.com/vovakirdan/wordgarden/internal/storage"
)

func newTestModel(t *testing.T, words []string, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config: config.GardenConfig{
			Words:      words,
			MaxGuesses: garden.DefaultMaxGuesses,
			WiltDelay:  time.Millisecond,
		},
		Seed:   1,
		Player: "tester",
		Store:  store,
		Width:  100,
		Height: 40,
	})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open("tui-" + t.Name())
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

func guessLetters(t *testing.T, m Model, letters string) Model {
	t.Helper()
	for _, ch := range letters {
		m = typeText(t, m, string(ch))
		m, _ = press(t, m, tea.KeyEnter)
	}
	return m
}

// imageMsgs runs cmd and collects any imageMsg it produces.
func imageMsgs(cmd tea.Cmd) []imageMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case imageMsg:
		return []imageMsg{msg}
	case tea.BatchMsg:
		var out []imageMsg
		for _, c := range msg {
			out = append(out, imageMsgs(c)...)
		}
		return out
	}
	return nil
}

func TestNewModelStartsRound(t *testing.T) {
	m := newTestModel(t, []string{"CAT", "DOG"}, nil)

	if !m.Session().AcceptsGuesses() {
		t.Fatal("new model should accept guesses")
	}
	if m.image != garden.FlowerImage(garden.DefaultMaxGuesses) {
		t.Errorf("image = %q, want %q", m.image, garden.FlowerImage(garden.DefaultMaxGuesses))
	}
	if m.SessionID() == "" {
		t.Error("SessionID() should not be empty")
	}

	view := m.View()
	for _, want := range []string{
		"Words Guessed: 0",
		"Words Missed: 0",
		"Words to Guess: 2",
		"Words in Game: 2",
		garden.StatusStart,
		"_ _ _",
		"Guess a Letter:",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestNewModelRejectsEmptyWords(t *testing.T) {
	_, err := NewModel(Options{Config: config.GardenConfig{}})
	if err == nil {
		t.Fatal("NewModel with no words should fail")
	}
}

func TestInputSanitizedOnKeystroke(t *testing.T) {
	tests := []struct {
		name  string
		typed []string
		want  string
	}{
		{"lowercase letter", []string{"d"}, "D"},
		{"digit dropped", []string{"7"}, ""},
		{"last letter wins", []string{"d", "x"}, "X"},
		{"punctuation after letter", []string{"q", "!"}, "Q"},
		{"pasted text", []string{"a1b2c"}, "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, []string{"CAT"}, nil)
			for _, s := range tt.typed {
				m = typeText(t, m, s)
			}
			if got := m.input.Value(); got != tt.want {
				t.Errorf("input value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnterIgnoredWhenEmpty(t *testing.T) {
	m := newTestModel(t, []string{"CAT"}, nil)

	m, cmd := press(t, m, tea.KeyEnter)
	if cmd != nil {
		t.Error("enter on empty field should not return a command")
	}
	if n := len(m.Session().Guessed()); n != 0 {
		t.Errorf("Guessed() has %d letters, want 0", n)
	}
}

func TestCorrectGuess(t *testing.T) {
	m := newTestModel(t, []string{"CAT"}, nil)

	m = guessLetters(t, m, "c")

	if got := m.Session().Reveal(); got != "C _ _" {
		t.Errorf("Reveal() = %q, want %q", got, "C _ _")
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared after a guess, got %q", m.input.Value())
	}
	if m.caption != "~ ding ~" {
		t.Errorf("caption = %q, want %q", m.caption, "~ ding ~")
	}
	if m.image != garden.FlowerImage(garden.DefaultMaxGuesses) {
		t.Errorf("image = %q, want unchanged flower", m.image)
	}
}

func TestMissShowsWiltThenFlower(t *testing.T) {
	m := newTestModel(t, []string{"CAT"}, nil)

	m = typeText(t, m, "z")
	m, cmd := press(t, m, tea.KeyEnter)

	if m.image != "wilt7" {
		t.Fatalf("image = %q, want %q right after a miss", m.image, "wilt7")
	}
	if m.caption != "~ bzzt ~" {
		t.Errorf("caption = %q, want %q", m.caption, "~ bzzt ~")
	}

	msgs := imageMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d delayed images, want 1", len(msgs))
	}
	if msgs[0].key != "flower7" {
		t.Errorf("delayed image = %q, want %q", msgs[0].key, "flower7")
	}

	m, _ = update(t, m, msgs[0])
	if m.image != "flower7" {
		t.Errorf("image = %q after delay, want %q", m.image, "flower7")
	}
	if !strings.Contains(m.View(), "You've Made 1 Guess") {
		t.Error("View() should report one guess")
	}
}

func TestStaleImageIgnored(t *testing.T) {
	m := newTestModel(t, []string{"CAT"}, nil)

	m = typeText(t, m, "z")
	m, first := press(t, m, tea.KeyEnter)
	stale := imageMsgs(first)
	if len(stale) != 1 {
		t.Fatalf("got %d delayed images, want 1", len(stale))
	}

	// A second miss supersedes the pending flower from the first.
	m = typeText(t, m, "q")
	m, _ = press(t, m, tea.KeyEnter)
	if m.image != "wilt6" {
		t.Fatalf("image = %q, want %q", m.image, "wilt6")
	}

	m, _ = update(t, m, stale[0])
	if m.image != "wilt6" {
		t.Errorf("stale delayed image replaced %q with %q", "wilt6", m.image)
	}
}

func TestWinRecordsRound(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, []string{"DOG"}, store)

	m = guessLetters(t, m, "dzog")

	s := m.Session()
	if s.Outcome() != garden.Won {
		t.Fatalf("Outcome() = %v, want Won", s.Outcome())
	}
	if m.Session().AcceptsGuesses() {
		t.Error("finished round should not accept guesses")
	}
	if m.input.Focused() {
		t.Error("guess field should lose focus after the round ends")
	}

	view := m.View()
	if !strings.Contains(view, garden.LabelRestart) {
		t.Errorf("View() missing %q button", garden.LabelRestart)
	}
	if strings.Contains(view, "Guess a Letter:") {
		t.Error("View() should hide the guess field after the round ends")
	}

	rounds, err := store.SessionRounds(m.SessionID())
	if err != nil {
		t.Fatalf("SessionRounds failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("got %d journaled rounds, want 1", len(rounds))
	}
	r := rounds[0]
	if r.Word != "DOG" || r.Outcome != "won" || r.Guesses != 4 || r.Misses != 1 || r.Player != "tester" {
		t.Errorf("journaled round = %+v", r)
	}
}

func TestLossRecordsRound(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, []string{"CAT", "DOG"}, store)

	m = guessLetters(t, m, "zqxwvbnm")

	if m.Session().Outcome() != garden.Lost {
		t.Fatalf("Outcome() = %v, want Lost", m.Session().Outcome())
	}
	if !strings.Contains(m.View(), garden.LabelAnotherWord) {
		t.Errorf("View() missing %q button", garden.LabelAnotherWord)
	}

	summary, err := store.Summary(m.SessionID())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.Rounds != 1 || summary.Lost != 1 || summary.Guesses != 8 {
		t.Errorf("Summary() = %+v", summary)
	}
}

func TestTypingIgnoredAfterRound(t *testing.T) {
	m := newTestModel(t, []string{"DOG", "CAT"}, nil)
	m = guessLetters(t, m, "dog")

	m = typeText(t, m, "c")
	if m.input.Value() != "" {
		t.Errorf("input value = %q, want empty while the button is shown", m.input.Value())
	}
	if m.Session().Target() != "DOG" {
		t.Errorf("Target() = %q, want DOG until play again", m.Session().Target())
	}
}

func TestPlayAgainAdvances(t *testing.T) {
	m := newTestModel(t, []string{"DOG", "CAT"}, nil)
	m = guessLetters(t, m, "dog")

	m, _ = press(t, m, tea.KeyEnter)

	s := m.Session()
	if s.Target() != "CAT" {
		t.Errorf("Target() = %q, want CAT", s.Target())
	}
	if !s.AcceptsGuesses() || !m.input.Focused() {
		t.Error("next round should accept guesses with a focused field")
	}
	if s.WordsGuessed() != 1 {
		t.Errorf("WordsGuessed() = %d, want 1", s.WordsGuessed())
	}
	if m.caption != "" {
		t.Errorf("caption = %q, want cleared", m.caption)
	}
	if m.image != garden.FlowerImage(garden.DefaultMaxGuesses) {
		t.Errorf("image = %q, want full flower", m.image)
	}
}

func TestPlayAgainRestartsCompleteSession(t *testing.T) {
	m := newTestModel(t, []string{"DOG"}, nil)
	m = guessLetters(t, m, "dog")
	if !m.Session().Complete() {
		t.Fatal("session should be complete")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	s := m.Session()
	if s.Index() != 0 || s.WordsGuessed() != 0 || s.WordsMissed() != 0 {
		t.Errorf("after restart index=%d guessed=%d missed=%d, want all 0",
			s.Index(), s.WordsGuessed(), s.WordsMissed())
	}
	if s.PlayAgainLabel() != garden.LabelAnotherWord {
		t.Errorf("PlayAgainLabel() = %q, want %q", s.PlayAgainLabel(), garden.LabelAnotherWord)
	}
}

func TestPendingImageDroppedOnPlayAgain(t *testing.T) {
	m := newTestModel(t, []string{"C", "A"}, nil)
	m = typeText(t, m, "z")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "c")
	m, _ = press(t, m, tea.KeyEnter)

	// Capture a delayed flower from the previous round.
	stale := imageMsg{key: "flower7", gen: m.imageGen}

	m, _ = press(t, m, tea.KeyEnter)
	m, _ = update(t, m, stale)

	if m.image != garden.FlowerImage(garden.DefaultMaxGuesses) {
		t.Errorf("image = %q, want stale flower dropped", m.image)
	}
}

func TestHistoryScreen(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, []string{"DOG", "CAT"}, store)
	m = guessLetters(t, m, "dog")

	m, _ = press(t, m, tea.KeyTab)
	if !m.showHistory {
		t.Fatal("tab should open the history screen")
	}
	view := m.View()
	for _, want := range []string{"Rounds This Session", "DOG", "won", "1 rounds, 1 won, 0 lost, 3 guesses"} {
		if !strings.Contains(view, want) {
			t.Errorf("history View() missing %q", want)
		}
	}

	m, _ = press(t, m, tea.KeyEsc)
	if m.showHistory {
		t.Fatal("esc should close the history screen")
	}
	if m.IsQuitting() {
		t.Error("esc on the history screen should not quit")
	}
	if !strings.Contains(m.View(), garden.LabelAnotherWord) {
		t.Error("closing history should return to the garden")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := newTestModel(t, []string{"CAT"}, nil)

	m, _ = press(t, m, tea.KeyTab)
	if !strings.Contains(m.View(), "No rounds finished yet.") {
		t.Error("history without a journal should be empty")
	}
}

func TestServerWideHistory(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRound(storage.RoundRecord{
		SessionID: "other", Player: "alice", Word: "SWIFT", Outcome: "lost", Guesses: 8, Misses: 8,
	}); err != nil {
		t.Fatalf("SaveRound failed: %v", err)
	}

	m, err := NewModel(Options{
		Config:     config.DefaultGardenConfig(),
		Player:     "bob",
		Store:      store,
		Width:      100,
		Height:     40,
		ServerWide: true,
	})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	m, _ = press(t, m, tea.KeyTab)
	view := m.View()
	for _, want := range []string{"Recent Rounds", "Player", "alice", "SWIFT"} {
		if !strings.Contains(view, want) {
			t.Errorf("server-wide history View() missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newTestModel(t, []string{"CAT"}, nil)
		m, cmd := press(t, m, k)
		if !m.IsQuitting() {
			t.Errorf("%v should quit", k)
		}
		if cmd == nil {
			t.Errorf("%v should return tea.Quit", k)
		}
		if m.View() != "" {
			t.Errorf("View() after quit = %q, want empty", m.View())
		}
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t, []string{"CAT"}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.width != 60 || m.height != 20 {
		t.Errorf("size = %dx%d, want 60x20", m.width, m.height)
	}
}

func TestKeyMapForGuessing(t *testing.T) {
	keys := DefaultKeyMap()

	guessing := keys.forGuessing(true)
	if !guessing.Guess.Enabled() || guessing.PlayAgain.Enabled() {
		t.Error("while guessing only the guess binding should be enabled")
	}

	finished := keys.forGuessing(false)
	if finished.Guess.Enabled() || !finished.PlayAgain.Enabled() {
		t.Error("after a round only the play-again binding should be enabled")
	}

	if !keys.Guess.Enabled() {
		t.Error("forGuessing should not modify the original key map")
	}
}

func TestSummarizeRounds(t *testing.T) {
	rounds := []storage.RoundRecord{
		{Outcome: "won"},
		{Outcome: "lost"},
		{Outcome: "won"},
	}
	if got, want := summarizeRounds(rounds), "3 rounds, 2 won, 1 lost"; got != want {
		t.Errorf("summarizeRounds() = %q, want %q", got, want)
	}
	if got, want := summarizeRounds(nil), "0 rounds, 0 won, 0 lost"; got != want {
		t.Errorf("summarizeRounds(nil) = %q, want %q", got, want)
	}
}
