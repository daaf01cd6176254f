package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// composite draws card centred on top of base. base is clipped or padded to
// width x height first so every row has a predictable visual width.
func composite(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}
	canvas := canvasLines(base, width, height)
	cardLines := strings.Split(card, "\n")
	cardWidth := widest(cardLines)
	if cardWidth == 0 {
		return strings.Join(canvas, "\n")
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)

	for i, line := range cardLines {
		row := y + i
		if row >= height {
			break
		}
		canvas[row] = spliceRow(canvas[row], fitWidth(line, cardWidth), x, width)
	}
	return strings.Join(canvas, "\n")
}

// spliceRow replaces the columns of row starting at x with segment, keeping
// whatever of row lies to the left and right (ANSI sequences included).
func spliceRow(row, segment string, x, width int) string {
	left := ansi.Truncate(row, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	end := x + ansi.StringWidth(segment)
	right := ""
	if end < width {
		right = ansi.TruncateLeft(row, end, "")
	}
	return fitWidth(left+segment+right, width)
}

func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = fitWidth(lines[i], width)
	}
	return lines
}

func widest(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// fitWidth truncates or right-pads s to exactly width columns.
func fitWidth(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
