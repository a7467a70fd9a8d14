package tui

import (
	"strings"
	"testing"
	"time"

	"typr/internal/engine"
	"typr/internal/model"
	"typr/internal/wordbank"
)

func timeSession(seconds int) *engine.Session {
	cfg := model.Config{
		Mode:             model.ModeTime,
		TimeLimitSeconds: seconds,
		WordCount:        50,
		Difficulty:       model.DifficultyNormal,
		WordLengthClass:  model.LengthAll,
	}
	return engine.New(cfg, wordbank.NewSeeded(2))
}

func TestRenderHeaderTimeMode(t *testing.T) {
	m := NewModel(timeSession(30))
	out := m.renderHeader()
	if !containsAll(out, []string{"wpm", "acc", "30s left"}) {
		t.Fatalf("header missing expected segments: %s", out)
	}
}

func TestRenderFooterSegments(t *testing.T) {
	m := NewModel(timeSession(30))
	out := m.renderFooter()
	if !containsAll(out, []string{"time 30s", "normal", "tab/esc restart", "ctrl+c quit"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestTickDrivesCompletionAndResults(t *testing.T) {
	m := NewModel(timeSession(15))
	m.ticking = true

	word := m.session.Words()[0]
	m.session.HandleInput(engine.CharEvent([]rune(word)[0]))

	if _, cmd := m.handleTick(time.Now().Add(20 * time.Second)); cmd != nil {
		t.Fatalf("expected ticker to stop at completion")
	}
	if m.session.Phase() != engine.PhaseCompleted {
		t.Fatalf("phase = %v, want completed", m.session.Phase())
	}
	view := m.View()
	if !strings.Contains(view, "Test complete") {
		t.Fatalf("results view missing title: %s", view)
	}
}

func TestRestartRevivesTicker(t *testing.T) {
	m := NewModel(timeSession(15))
	m.ticking = false
	if cmd := m.restart(); cmd == nil {
		t.Fatalf("expected restart to reschedule the ticker")
	}
	if m.session.Phase() != engine.PhaseIdle {
		t.Fatalf("restart did not reset the session")
	}
	if cmd := m.restart(); cmd != nil {
		t.Fatalf("ticker already running; restart must not double-schedule")
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
