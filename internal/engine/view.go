package engine

import (
	"time"

	"typr/internal/model"
)

// Read-only views over the session for rendering layers. Returned slices
// are the engine's own backing storage and must not be mutated.

// Config returns the active session configuration.
func (s *Session) Config() model.Config { return s.cfg }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Words returns the target word sequence.
func (s *Session) Words() []string { return s.words }

// WordIndex returns the index of the word being typed.
func (s *Session) WordIndex() int { return s.wordIndex }

// Input returns the in-progress typed text for the current word.
func (s *Session) Input() []rune { return s.input }

// CharStates returns the per-character statuses for word i.
func (s *Session) CharStates(i int) []CharStatus { return s.charStates[i] }

// WordStates returns the per-word statuses.
func (s *Session) WordStates() []WordState { return s.wordStates }

// Counters returns the accumulated character and word counters.
func (s *Session) Counters() Counters { return s.counters }

// Elapsed returns the elapsed time as of the last tick or phase change.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Remaining returns the time left in a time-mode session, zero otherwise.
func (s *Session) Remaining() time.Duration {
	if s.cfg.Mode != model.ModeTime {
		return 0
	}
	limit := time.Duration(s.cfg.TimeLimitSeconds) * time.Second
	if s.elapsed >= limit {
		return 0
	}
	return limit - s.elapsed
}

// FailedWord returns the target word on which a difficulty rule failed the
// session, or "" if the session has not failed.
func (s *Session) FailedWord() string { return s.failedWord }
