// Package display holds the fixed-capacity slot sinks rows are written into
package display

import "github.com/gdamore/tcell/v2"

// Slot is what one display line shows
type Slot struct {
	Label   string
	Content string
	Color   tcell.Color
	Size    int
}

// Sink is a fixed-capacity ordered array of display slots
type Sink interface {
	Cap() int
	Set(i int, slot Slot)
	Hide(i int)
}

// Panel is an in-memory Sink
type Panel struct {
	slots   []Slot
	visible []bool
}

// NewPanel creates a panel with n hidden slots
func NewPanel(n int) *Panel {
	return &Panel{
		slots:   make([]Slot, n),
		visible: make([]bool, n),
	}
}

// Cap implements Sink
func (p *Panel) Cap() int {
	return len(p.slots)
}

// Set implements Sink; out of range indexes are ignored
func (p *Panel) Set(i int, slot Slot) {
	if i < 0 || i >= len(p.slots) {
		return
	}
	p.slots[i] = slot
	p.visible[i] = true
}

// Hide implements Sink
func (p *Panel) Hide(i int) {
	if i < 0 || i >= len(p.slots) {
		return
	}
	p.slots[i] = Slot{}
	p.visible[i] = false
}

// Slot returns slot i and whether it is shown
func (p *Panel) Slot(i int) (Slot, bool) {
	if i < 0 || i >= len(p.slots) {
		return Slot{}, false
	}
	return p.slots[i], p.visible[i]
}

// Visible returns the shown slots in index order
func (p *Panel) Visible() []Slot {
	var out []Slot
	for i, s := range p.slots {
		if p.visible[i] {
			out = append(out, s)
		}
	}
	return out
}
