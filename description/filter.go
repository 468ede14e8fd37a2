package description

import "github.com/lixenwraith/modpack/display"

// Filter returns the rows whose Detail intersects want, in input order
func Filter(rows []Row, want Detail) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Detail.Intersects(want) {
			out = append(out, r)
		}
	}
	return out
}

// Show writes the rows matching want into sink, truncating at its capacity, and hides
// every slot after the last one written. Returns the number of slots shown
func Show(rows []Row, want Detail, sink display.Sink) int {
	n := 0
	limit := sink.Cap()
	for _, r := range rows {
		if n >= limit {
			break
		}
		if !r.Detail.Intersects(want) {
			continue
		}
		sink.Set(n, Slot(r))
		n++
	}
	for i := n; i < limit; i++ {
		sink.Hide(i)
	}
	return n
}

// Slot converts a row into the display form, content rendered as plain text
func Slot(r Row) display.Slot {
	return display.Slot{
		Label:   r.Label,
		Content: r.Content,
		Color:   r.Color,
		Size:    r.Size,
	}
}
