package tui

import (
	"strings"
	"testing"

	"typr/internal/engine"
	"typr/internal/model"
	"typr/internal/wordbank"
)

func mediumWordsSession(t *testing.T) *engine.Session {
	t.Helper()
	cfg := model.Config{
		Mode:            model.ModeWords,
		WordCount:       5,
		Difficulty:      model.DifficultyNormal,
		WordLengthClass: model.LengthMedium, // every word has at least 5 chars
	}
	return engine.New(cfg, wordbank.NewSeeded(11))
}

func TestBuildCellsCurrentWordAndCursor(t *testing.T) {
	s := mediumWordsSession(t)
	word := []rune(s.Words()[0])
	s.HandleInput(engine.CharEvent(word[0]))

	cells := buildCells(s)
	if cells[0].s != correctStyle.Render(string(word[0])) {
		t.Fatalf("expected correct style for typed rune")
	}
	if cells[1].s != currentWordStyle.Underline(true).Render(string(word[1])) {
		t.Fatalf("expected underlined cursor on next rune")
	}
	if cells[2].s != currentWordStyle.Render(string(word[2])) {
		t.Fatalf("expected current word style for untyped rune")
	}
	next := []rune(s.Words()[1])
	sepIdx := len(word)
	if !cells[sepIdx].isSpace {
		t.Fatalf("expected space cell between words")
	}
	if cells[sepIdx+1].s != pendingStyle.Render(string(next[0])) {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildCellsMistypeAndOverflow(t *testing.T) {
	s := mediumWordsSession(t)
	word := []rune(s.Words()[0])
	wrong := 'x'
	if word[0] == 'x' {
		wrong = 'y'
	}
	s.HandleInput(engine.CharEvent(wrong))

	cells := buildCells(s)
	if cells[0].s != incorrectStyle.Render(string(word[0])) {
		t.Fatalf("expected incorrect style to keep the target rune")
	}

	// Finish the word and overflow by one character.
	s.HandleInput(engine.BackspaceEvent())
	for _, r := range word {
		s.HandleInput(engine.CharEvent(r))
	}
	s.HandleInput(engine.CharEvent('z'))
	cells = buildCells(s)
	if cells[len(word)].s != overflowStyle.Render("z") {
		t.Fatalf("expected overflow cell after the word")
	}
}

func TestBuildCellsMissingAfterShortCommit(t *testing.T) {
	s := mediumWordsSession(t)
	word := []rune(s.Words()[0])
	s.HandleInput(engine.CharEvent(word[0]))
	s.HandleInput(engine.CommitEvent())

	cells := buildCells(s)
	if cells[1].s != missingStyle.Render(string(word[1])) {
		t.Fatalf("expected missing style for the short-committed tail")
	}
}

func TestWrapCellsBreaksAtSpaces(t *testing.T) {
	cells := []styledCell{}
	for _, word := range []string{"one", "two", "three"} {
		if len(cells) > 0 {
			cells = append(cells, spaceCell())
		}
		for _, r := range word {
			cells = append(cells, cell(pendingStyle, r))
		}
	}
	wrapped := wrapCells(cells, 7)
	lines := strings.Split(wrapped, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), wrapped)
	}
}

func TestWrapCellsZeroWidthRendersFlat(t *testing.T) {
	cells := []styledCell{cell(pendingStyle, 'a'), cell(pendingStyle, 'b')}
	if out := wrapCells(cells, 0); strings.Contains(out, "\n") {
		t.Fatalf("zero width should not wrap: %q", out)
	}
}
