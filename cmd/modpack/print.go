package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/modpack/description"
	"github.com/lixenwraith/modpack/display"
	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/mods/descriptions"
)

const panelRows = 16

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	labelStyle = lipgloss.NewStyle().Width(24)
	noteStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#7f849c"))
)

func printEntities(w io.Writer, d *descriptions.Mod, src entity.Source, ids []entity.ID) {
	for _, id := range ids {
		e, ok := src.Entity(id)
		if !ok {
			fmt.Fprintln(w, noteStyle.Render(fmt.Sprintf("unknown entity %d", id)))
			continue
		}
		fmt.Fprintln(w, titleStyle.Render(e.Name)+" "+idStyle.Render(fmt.Sprintf("#%d", id)))

		panel := display.NewPanel(panelRows)
		if d.ShowDetails(id, panel) {
			for _, slot := range panel.Visible() {
				fmt.Fprintln(w, "  "+renderSlot(slot))
			}
		} else {
			fmt.Fprintln(w, "  "+noteStyle.Render("host details"))
		}

		if size, ok := d.BarSize(id); ok {
			scale, _ := d.BarScale(id)
			fmt.Fprintf(w, "  %s %d%% (scale %.2f x %.2f)\n", labelStyle.Render("Bar"), size, scale.X, scale.Y)
		}
		if slot, ok := d.AttackSpeedRow(id); ok {
			fmt.Fprintln(w, "  "+renderSlot(slot))
		}
	}
}

func renderSlot(slot display.Slot) string {
	content := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(slot.Color)))
	if slot.Size < description.DefaultFontSize {
		content = content.Faint(true)
	}
	return labelStyle.Render(slot.Label) + content.Render(slot.Content)
}

func hexColor(c tcell.Color) string {
	v := c.Hex()
	if v < 0 {
		return "#ffffff"
	}
	return fmt.Sprintf("#%06x", v)
}
