package garden

import (
	"fmt"
	"time"
)

// CueKind distinguishes sound cues from image cues.
type CueKind int

const (
	CueSound CueKind = iota
	CueImage
)

// Sound cue names.
const (
	SoundCorrect        = "correct"
	SoundIncorrect      = "incorrect"
	SoundWordGuessed    = "word-guessed"
	SoundWordNotGuessed = "word-not-guessed"
)

// Cue is a render instruction emitted by a transition.
// Cues carry no game state; dropping or delaying one never changes a Session.
type Cue struct {
	Kind  CueKind
	Name  string
	Delay time.Duration // Zero means show immediately
}

// SoundCue returns an immediate sound cue.
func SoundCue(name string) Cue {
	return Cue{Kind: CueSound, Name: name}
}

// ImageCue returns an image cue shown after delay.
func ImageCue(key string, delay time.Duration) Cue {
	return Cue{Kind: CueImage, Name: key, Delay: delay}
}

// FlowerImage returns the image key for a healthy flower with n guesses left.
func FlowerImage(n int) string {
	return fmt.Sprintf("flower%d", n)
}

// WiltImage returns the image key for the wilting flower after a miss.
func WiltImage(n int) string {
	return fmt.Sprintf("wilt%d", n)
}
