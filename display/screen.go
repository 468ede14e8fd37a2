package display

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenSink draws slots as consecutive lines of a tcell screen region
// Label is left aligned, content starts after LabelWidth columns in the slot color
// Slots smaller than BaseSize are drawn dim, the closest a terminal gets to a smaller font
type ScreenSink struct {
	Screen     tcell.Screen
	X, Y       int
	Width      int
	Lines      int
	LabelWidth int
	BaseSize   int
	Style      tcell.Style
}

// NewScreenSink creates a sink over lines rows starting at (x, y)
func NewScreenSink(screen tcell.Screen, x, y, width, lines int) *ScreenSink {
	return &ScreenSink{
		Screen:     screen,
		X:          x,
		Y:          y,
		Width:      width,
		Lines:      lines,
		LabelWidth: width / 2,
		BaseSize:   19,
		Style:      tcell.StyleDefault,
	}
}

// Cap implements Sink
func (s *ScreenSink) Cap() int {
	return s.Lines
}

// Set implements Sink
func (s *ScreenSink) Set(i int, slot Slot) {
	if i < 0 || i >= s.Lines {
		return
	}
	y := s.Y + i
	s.clearLine(y)
	s.drawText(s.X, y, s.LabelWidth, slot.Label, s.Style)

	style := s.Style.Foreground(slot.Color)
	if slot.Size > 0 && slot.Size < s.BaseSize {
		style = style.Dim(true)
	}
	s.drawText(s.X+s.LabelWidth, y, s.Width-s.LabelWidth, slot.Content, style)
}

// Hide implements Sink
func (s *ScreenSink) Hide(i int) {
	if i < 0 || i >= s.Lines {
		return
	}
	s.clearLine(s.Y + i)
}

func (s *ScreenSink) clearLine(y int) {
	for x := 0; x < s.Width; x++ {
		s.Screen.SetContent(s.X+x, y, ' ', nil, s.Style)
	}
}

// drawText writes text clipped to width columns, one rune per column
func (s *ScreenSink) drawText(x, y, width int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= width {
			return
		}
		s.Screen.SetContent(x+col, y, r, nil, style)
		col++
	}
}
