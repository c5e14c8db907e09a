// Package garden implements the Word Garden game engine.
// A Session is an immutable snapshot; every transition returns a new Session
// and leaves the receiver untouched, so the UI can hold the current value and
// re-render whenever it changes. The package has no UI dependencies.
package garden

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Defaults used when no options are given.
const (
	DefaultMaxGuesses = 8
	DefaultWiltDelay  = 750 * time.Millisecond
)

// Status messages and button labels shown by the renderer.
const (
	StatusStart      = "How Many Guesses to Uncover the Hidden Word?"
	StatusLost       = "So Sorry, You're All Out Of Guesses"
	StatusComplete   = "You've Tried All the Words. Would You Like to Restart?"
	LabelAnotherWord = "Another Word?"
	LabelRestart     = "Restart Game?"
)

// Errors returned by Session transitions.
var (
	ErrInvalidGuess    = errors.New("garden: invalid guess")
	ErrInvalidState    = errors.New("garden: invalid state")
	ErrInvalidWordList = errors.New("garden: invalid word list")
)

// Outcome is the state of the current round.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Session holds the whole game state for one pass over a word list.
type Session struct {
	words      []string
	maxGuesses int
	wiltDelay  time.Duration

	index     int
	target    string
	guessed   []string
	remaining int

	wordsGuessed int
	wordsMissed  int
	outcome      Outcome

	status     string
	label      string
	imageKey   string
	roundReady bool
}

// Option configures a new Session.
type Option func(*Session)

// WithMaxGuesses sets the guess budget per word. Values below 1 are ignored.
func WithMaxGuesses(n int) Option {
	return func(s *Session) {
		if n >= 1 {
			s.maxGuesses = n
		}
	}
}

// WithWiltDelay sets how long the wilted image stays before the flower returns.
func WithWiltDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.wiltDelay = d
		}
	}
}

// NewSession validates the word list and starts the first round.
// Words must already be uppercase A-Z; use NormalizeWords for raw input.
func NewSession(words []string, opts ...Option) (Session, error) {
	if len(words) == 0 {
		return Session{}, fmt.Errorf("%w: no words", ErrInvalidWordList)
	}
	for i, w := range words {
		if !isUpperAlpha(w) {
			return Session{}, fmt.Errorf("%w: word %d %q is not uppercase A-Z", ErrInvalidWordList, i, w)
		}
	}

	s := Session{
		words:      slices.Clone(words),
		maxGuesses: DefaultMaxGuesses,
		wiltDelay:  DefaultWiltDelay,
		label:      LabelAnotherWord,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s.StartRound()
}

// StartRound begins a round for the word at the current index.
// Returns ErrInvalidState when every word has been played.
func (s Session) StartRound() (Session, error) {
	if s.Complete() {
		return s, fmt.Errorf("%w: no words left to start a round", ErrInvalidState)
	}

	s.target = s.words[s.index]
	s.guessed = nil
	s.remaining = s.maxGuesses
	s.outcome = InProgress
	s.status = StatusStart
	s.imageKey = FlowerImage(s.remaining)
	s.roundReady = true
	return s, nil
}

// SubmitGuess applies one letter to the current round.
// The letter must be a single uppercase A-Z character; see SanitizeGuess.
// The returned cues tell the renderer which sounds and images to play, in order.
func (s Session) SubmitGuess(letter string) (Session, []Cue, error) {
	if len(letter) != 1 || !isUpperAlpha(letter) {
		return s, nil, fmt.Errorf("%w: %q", ErrInvalidGuess, letter)
	}
	if !s.roundReady || s.outcome != InProgress {
		return s, nil, fmt.Errorf("%w: no round in progress", ErrInvalidState)
	}

	// Duplicates are kept; a repeated miss costs another guess.
	s.guessed = append(slices.Clone(s.guessed), letter)

	var cues []Cue
	if strings.Contains(s.target, letter) {
		cues = append(cues, SoundCue(SoundCorrect))
	} else {
		s.remaining = max(s.remaining-1, 0)
		s.imageKey = FlowerImage(s.remaining)
		cues = append(cues,
			ImageCue(WiltImage(s.remaining), 0),
			SoundCue(SoundIncorrect),
			ImageCue(FlowerImage(s.remaining), s.wiltDelay),
		)
	}

	switch {
	case !strings.Contains(s.Reveal(), Blank):
		s.outcome = Won
		s.wordsGuessed++
		s.index++
		s.status = fmt.Sprintf("You Guessed It! It Took You %s To Guess The Word.", guessCount(len(s.guessed)))
		cues = append(cues, SoundCue(SoundWordGuessed))
	case s.remaining == 0:
		s.outcome = Lost
		s.wordsMissed++
		s.index++
		s.status = StatusLost
		cues = append(cues, SoundCue(SoundWordNotGuessed))
	default:
		s.status = fmt.Sprintf("You've Made %s", guessCount(len(s.guessed)))
	}

	if s.Complete() {
		s.label = LabelRestart
		s.status += "\n" + StatusComplete
	}

	return s, cues, nil
}

// AdvanceOrRestart moves on after a finished round. When the word list is
// exhausted the counters reset first. It is a no-op while a round is in
// progress.
func (s Session) AdvanceOrRestart() Session {
	if s.outcome == InProgress {
		return s
	}

	if s.Complete() {
		s.index = 0
		s.wordsGuessed = 0
		s.wordsMissed = 0
		s.label = LabelAnotherWord
	}

	// Index is in range here, so StartRound cannot fail.
	next, _ := s.StartRound()
	return next
}

// Reveal returns the target with unguessed letters blanked, space separated.
func (s Session) Reveal() string {
	return strings.Join(s.RevealLetters(), " ")
}

// RevealLetters returns one entry per target letter: the letter or Blank.
func (s Session) RevealLetters() []string {
	return lo.Map(strings.Split(s.target, ""), func(ch string, _ int) string {
		if lo.Contains(s.guessed, ch) {
			return ch
		}
		return Blank
	})
}

// Blank marks an unrevealed letter in the reveal pattern.
const Blank = "_"

// Target returns the word of the current or just-finished round.
func (s Session) Target() string { return s.target }

// Guessed returns the letters guessed this round, in order.
func (s Session) Guessed() []string { return slices.Clone(s.guessed) }

// Misses returns how many guesses this round were wrong.
func (s Session) Misses() int { return s.maxGuesses - s.remaining }

// Remaining returns the guesses left for the current word.
func (s Session) Remaining() int { return s.remaining }

// MaxGuesses returns the per-word guess budget.
func (s Session) MaxGuesses() int { return s.maxGuesses }

// WiltDelay returns the delay between the wilt and flower images.
func (s Session) WiltDelay() time.Duration { return s.wiltDelay }

// Index returns the position of the next word to play.
func (s Session) Index() int { return s.index }

// WordsGuessed returns the number of words won this session.
func (s Session) WordsGuessed() int { return s.wordsGuessed }

// WordsMissed returns the number of words lost this session.
func (s Session) WordsMissed() int { return s.wordsMissed }

// WordsInGame returns the size of the word list.
func (s Session) WordsInGame() int { return len(s.words) }

// WordsRemaining returns how many words have not been played yet.
func (s Session) WordsRemaining() int {
	return len(s.words) - (s.wordsGuessed + s.wordsMissed)
}

// Outcome returns the state of the current round.
func (s Session) Outcome() Outcome { return s.outcome }

// Complete reports whether every word in the list has been played.
func (s Session) Complete() bool { return s.index == len(s.words) }

// Status returns the message to show above the reveal pattern.
func (s Session) Status() string { return s.status }

// PlayAgainLabel returns the label for the button shown after a round ends.
func (s Session) PlayAgainLabel() string { return s.label }

// ImageKey returns the settled image for the current guess count.
func (s Session) ImageKey() string { return s.imageKey }

// AcceptsGuesses reports whether the guess input should be shown.
// When false the renderer shows the play-again button instead.
func (s Session) AcceptsGuesses() bool {
	return s.roundReady && s.outcome == InProgress
}

func guessCount(n int) string {
	if n == 1 {
		return "1 Guess"
	}
	return fmt.Sprintf("%d Guesses", n)
}

func isUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
