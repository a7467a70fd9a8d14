// Package engine implements the typing-session state machine: word stream,
// per-character reconciliation, word commit and rollback, timing, and
// completion rules.
package engine

// CharStatus is the per-character reconciliation result for one slot of a
// target word.
type CharStatus int

// Character statuses.
const (
	CharUntyped CharStatus = iota
	CharCorrect
	CharIncorrect
	// CharMissing marks target characters left untyped when a word was
	// committed short.
	CharMissing
)

// WordStatus is the per-word status.
type WordStatus int

// Word statuses.
const (
	WordUntyped WordStatus = iota
	WordCurrent
	WordCorrect
	WordIncorrect
)

// Phase is the session lifecycle state. Completed and Failed are terminal;
// only Reset leaves them.
type Phase int

// Session phases.
const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseCompleted
	PhaseFailed
)

// Counters accumulates terminal-status character and word counts. Correct
// plus incorrect never exceeds total, and all fields stay non-negative.
type Counters struct {
	CorrectChars   int
	IncorrectChars int
	TotalChars     int
	CorrectWords   int
	IncorrectWords int
}

// WordState is the committed status of one word slot plus the literal text
// typed for it, kept so a later backspace can roll the commit back.
type WordState struct {
	Status WordStatus
	Typed  string
}

// commitDelta records exactly what one word commit added to the counters,
// so a cross-word backspace can subtract it back out.
type commitDelta struct {
	typed   string
	missing int
	correct bool
}

// EventKind discriminates input events.
type EventKind int

// Input event kinds.
const (
	EventChar EventKind = iota
	EventBackspace
	EventCommit
)

// Event is one atomic input transition. Events are reduced strictly in the
// order they are received.
type Event struct {
	Kind EventKind
	Rune rune
}

// CharEvent wraps a printable character keystroke.
func CharEvent(r rune) Event { return Event{Kind: EventChar, Rune: r} }

// BackspaceEvent wraps a backspace keystroke.
func BackspaceEvent() Event { return Event{Kind: EventBackspace} }

// CommitEvent wraps a space keystroke, which commits the current word.
func CommitEvent() Event { return Event{Kind: EventCommit} }

// validInputRune reports whether a rune is accepted as typing input:
// letters, digits, and the supported punctuation set.
func validInputRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '.', ',', '!', '?', ';', ':', '\'', '"', '(', ')', '-':
		return true
	}
	return false
}
