// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"typr/internal/engine"
)

// Words rendered behind and ahead of the cursor. Time-mode streams grow
// unbounded, so the view projects a sliding window.
const (
	renderBehind = 10
	renderAhead  = 30
)

type styledCell struct {
	s       string
	width   int
	isSpace bool
}

func cell(style lipgloss.Style, r rune) styledCell {
	return styledCell{
		s:     style.Render(string(r)),
		width: runewidth.RuneWidth(r),
	}
}

func spaceCell() styledCell {
	return styledCell{s: pendingStyle.Render(" "), width: 1, isSpace: true}
}

// buildCells projects the session's word and character states into styled
// cells for wrapping.
func buildCells(s *engine.Session) []styledCell {
	words := s.Words()
	wordStates := s.WordStates()
	cursorWord := s.WordIndex()
	input := s.Input()

	start := cursorWord - renderBehind
	if start < 0 {
		start = 0
	}
	end := cursorWord + renderAhead
	if end > len(words) {
		end = len(words)
	}

	cells := make([]styledCell, 0, (end-start)*8)
	for i := start; i < end; i++ {
		if i > start {
			cells = append(cells, spaceCell())
		}
		target := []rune(words[i])
		states := s.CharStates(i)
		isCurrent := i == cursorWord
		for j, r := range target {
			style := pendingStyle
			switch states[j] {
			case engine.CharCorrect:
				style = correctStyle
			case engine.CharIncorrect:
				style = incorrectStyle
			case engine.CharMissing:
				style = missingStyle
			default:
				if isCurrent {
					style = currentWordStyle
				}
			}
			if isCurrent && j == len(input) {
				style = style.Underline(true)
			}
			cells = append(cells, cell(style, r))
		}
		// Overflow has no character slot; render it after the word in the
		// error style.
		var overflow []rune
		if isCurrent {
			if len(input) > len(target) {
				overflow = input[len(target):]
			}
		} else if ws := wordStates[i]; ws.Status == engine.WordCorrect || ws.Status == engine.WordIncorrect {
			typed := []rune(ws.Typed)
			if len(typed) > len(target) {
				overflow = typed[len(target):]
			}
		}
		for _, r := range overflow {
			cells = append(cells, cell(overflowStyle, r))
		}
	}
	return cells
}

func renderCells(cells []styledCell) string {
	var b strings.Builder
	for _, item := range cells {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapCells wraps styled cells to a display width, breaking at spaces.
func wrapCells(cells []styledCell, width int) string {
	if width <= 0 {
		return renderCells(cells)
	}
	var out strings.Builder
	line := make([]styledCell, 0, len(cells))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(cells); {
		item := cells[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderCells(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledCell{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderCells(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderCells(line))
	return out.String()
}

func lineWidthOf(line []styledCell) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledCell) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
