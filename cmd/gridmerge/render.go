package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridmerge/internal/engine"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Width(6).
			Align(lipgloss.Center)

	emptyStyle = cellStyle.Foreground(lipgloss.Color("240"))
)

// tileColor picks a color per tile value, brighter for bigger tiles.
func tileColor(v int) lipgloss.Color {
	switch {
	case v >= 2048:
		return lipgloss.Color("226") // yellow
	case v >= 512:
		return lipgloss.Color("201") // magenta
	case v >= 128:
		return lipgloss.Color("208") // orange
	case v >= 32:
		return lipgloss.Color("45") // cyan
	case v >= 8:
		return lipgloss.Color("84") // green
	default:
		return lipgloss.Color("252") // light gray
	}
}

// renderBoard draws the board as a bordered grid. Empty cells show a
// dot so the grid shape stays visible.
func renderBoard(b engine.Board) string {
	rows := make([]string, 0, b.Size())
	for _, row := range b {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			if v == 0 {
				cells = append(cells, emptyStyle.Render("."))
				continue
			}
			style := cellStyle.Foreground(tileColor(v)).Bold(v >= 128)
			cells = append(cells, style.Render(fmt.Sprintf("%d", v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(strings.Join(rows, "\n"))
}

// describeRules summarizes a mode's engine configuration for listings.
func describeRules(cfg engine.Config) string {
	size := cfg.Size
	if size == 0 {
		size = 4
	}
	target := cfg.Target
	if target == 0 {
		target = 2048
	}

	parts := []string{fmt.Sprintf("%dx%d, target %d", size, size, target)}
	if cfg.MoveBudget > 0 {
		parts = append(parts, fmt.Sprintf("%d moves", cfg.MoveBudget))
	}
	if cfg.TimeBudget > 0 {
		parts = append(parts, fmt.Sprintf("%d time units", cfg.TimeBudget))
	}
	if len(cfg.Collect) > 0 {
		parts = append(parts, fmt.Sprintf("%d collection goals", len(cfg.Collect)))
	}
	return strings.Join(parts, ", ")
}
