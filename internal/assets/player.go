package assets

import (
	"bytes"
	"io"
)

// Player plays sound cues.
type Player interface {
	// Play plays the named sound and returns its caption.
	// Missing sounds return "" and are not an error.
	Play(name string) string
}

// BellPlayer plays sounds by writing terminal bells to w.
type BellPlayer struct {
	catalog *Catalog
	w       io.Writer
}

// NewBellPlayer creates a player that rings the terminal bell on w.
// A nil writer keeps captions but stays silent.
func NewBellPlayer(catalog *Catalog, w io.Writer) *BellPlayer {
	return &BellPlayer{catalog: catalog, w: w}
}

// Play writes the sound's bells and returns its caption.
func (p *BellPlayer) Play(name string) string {
	s, err := p.catalog.Sound(name)
	if err != nil {
		p.catalog.logger.Warn("missing sound", "name", name)
		return ""
	}

	if p.w != nil && s.Bell > 0 {
		if _, err := p.w.Write(bytes.Repeat([]byte{'\a'}, s.Bell)); err != nil {
			p.catalog.logger.Warn("cannot play sound", "name", name, "error", err)
		}
	}
	return s.Caption
}

var _ Player = (*BellPlayer)(nil)
