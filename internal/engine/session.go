package engine

import (
	"strings"
	"time"

	"typr/internal/metrics"
	"typr/internal/model"
	"typr/internal/wordbank"
)

// Time-mode sessions refill the word tail before the cursor can reach it.
const (
	refillMargin = 25
	refillBatch  = 200
)

// Session owns the state of one typing test. It is not safe for concurrent
// use; callers must apply events and ticks from a single goroutine per
// session, in arrival order.
type Session struct {
	cfg   model.Config
	gen   *wordbank.Generator
	clock func() time.Time

	words      []string
	wordIndex  int
	input      []rune
	charStates [][]CharStatus
	wordStates []WordState
	counters   Counters
	phase      Phase
	commits    []commitDelta

	startedAt  time.Time
	elapsed    time.Duration
	failedWord string
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects the time source used when the session activates and
// completes. Ticks always carry their own timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

// New creates a session in the idle phase with a freshly generated word
// stream.
func New(cfg model.Config, gen *wordbank.Generator, opts ...Option) *Session {
	s := &Session{cfg: cfg, gen: gen, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(nil)
	return s
}

// Reset discards all session state and starts over in the idle phase. A
// non-nil cfg reconfigures the session. The previous state is replaced
// wholesale; no event from before the reset can touch the new state.
func (s *Session) Reset(cfg *model.Config) {
	if cfg != nil {
		s.cfg = *cfg
	}
	s.install(s.gen.Generate(s.cfg))
}

// install replaces the whole session state with a fresh idle one over the
// given word stream.
func (s *Session) install(words []string) {
	s.words = words
	s.wordIndex = 0
	s.input = nil
	s.charStates = make([][]CharStatus, len(s.words))
	for i, word := range s.words {
		s.charStates[i] = make([]CharStatus, len([]rune(word)))
	}
	s.wordStates = make([]WordState, len(s.words))
	if len(s.wordStates) > 0 {
		s.wordStates[0].Status = WordCurrent
	}
	s.counters = Counters{}
	s.phase = PhaseIdle
	s.commits = nil
	s.startedAt = time.Time{}
	s.elapsed = 0
	s.failedWord = ""
}

// HandleInput reduces one input event. Events in a terminal phase are
// consumed without effect.
func (s *Session) HandleInput(ev Event) {
	if s.phase == PhaseCompleted || s.phase == PhaseFailed {
		return
	}
	switch ev.Kind {
	case EventChar:
		s.typeChar(ev.Rune)
	case EventBackspace:
		s.backspace()
	case EventCommit:
		s.commitWord()
	}
}

// typeChar appends one printable character to the current input and marks
// its slot. The first character of a session starts the clock.
func (s *Session) typeChar(r rune) {
	if !validInputRune(r) {
		return
	}
	if s.phase == PhaseIdle {
		s.phase = PhaseActive
		s.startedAt = s.clock()
	}
	target := []rune(s.words[s.wordIndex])
	pos := len(s.input)
	if pos < len(target) {
		if r == target[pos] {
			s.charStates[s.wordIndex][pos] = CharCorrect
			s.counters.CorrectChars++
		} else {
			if s.cfg.Difficulty == model.DifficultyMaster {
				s.fail()
				return
			}
			s.charStates[s.wordIndex][pos] = CharIncorrect
			s.counters.IncorrectChars++
		}
	} else {
		// Overflow beyond the target word: no slot exists, counted
		// incorrect. A master-mode run cannot survive it either.
		if s.cfg.Difficulty == model.DifficultyMaster {
			s.fail()
			return
		}
		s.counters.IncorrectChars++
	}
	s.counters.TotalChars++
	s.input = append(s.input, r)
}

// commitWord finalizes the current word on a space. Empty input is consumed
// as a no-op.
func (s *Session) commitWord() {
	if s.phase != PhaseActive {
		return
	}
	typed := string(s.input)
	if strings.TrimSpace(typed) == "" {
		return
	}
	target := s.words[s.wordIndex]
	isCorrect := typed == target
	if s.cfg.Difficulty == model.DifficultyExpert && !isCorrect {
		s.fail()
		return
	}

	targetRunes := []rune(target)
	// Commit never overwrites feedback already given during entry; it only
	// fills slots still untyped and marks the short tail missing.
	for i := 0; i < len(targetRunes) && i < len(s.input); i++ {
		if s.charStates[s.wordIndex][i] != CharUntyped {
			continue
		}
		if s.input[i] == targetRunes[i] {
			s.charStates[s.wordIndex][i] = CharCorrect
			s.counters.CorrectChars++
		} else {
			s.charStates[s.wordIndex][i] = CharIncorrect
			s.counters.IncorrectChars++
		}
		s.counters.TotalChars++
	}
	missing := 0
	for i := len(s.input); i < len(targetRunes); i++ {
		s.charStates[s.wordIndex][i] = CharMissing
		missing++
	}
	s.counters.IncorrectChars += missing
	s.counters.TotalChars += missing

	status := WordCorrect
	if isCorrect {
		s.counters.CorrectWords++
	} else {
		s.counters.IncorrectWords++
		status = WordIncorrect
	}
	s.wordStates[s.wordIndex] = WordState{Status: status, Typed: typed}
	s.commits = append(s.commits, commitDelta{typed: typed, missing: missing, correct: isCorrect})

	s.wordIndex++
	s.input = nil
	if s.wordIndex < len(s.words) {
		s.wordStates[s.wordIndex].Status = WordCurrent
	}
	s.checkCompletion()
	if s.phase == PhaseActive && s.cfg.Mode == model.ModeTime {
		s.refill()
	}
}

// backspace removes the last typed character, or rolls back into the
// previous committed word when the current input is empty.
func (s *Session) backspace() {
	if len(s.input) > 0 {
		pos := len(s.input) - 1
		r := s.input[pos]
		s.input = s.input[:pos]
		target := []rune(s.words[s.wordIndex])
		if pos < len(target) {
			if r == target[pos] {
				s.counters.CorrectChars--
			} else {
				s.counters.IncorrectChars--
			}
			s.charStates[s.wordIndex][pos] = CharUntyped
		} else {
			s.counters.IncorrectChars--
		}
		s.counters.TotalChars--
		return
	}
	if s.wordIndex == 0 {
		return
	}
	// Roll back the previous commit: subtract exactly what it added and
	// restore its typed text for editing. Committed character marks stay.
	delta := s.commits[len(s.commits)-1]
	s.commits = s.commits[:len(s.commits)-1]
	s.counters.IncorrectChars -= delta.missing
	s.counters.TotalChars -= delta.missing
	if delta.correct {
		s.counters.CorrectWords--
	} else {
		s.counters.IncorrectWords--
	}
	if s.wordIndex < len(s.wordStates) {
		s.wordStates[s.wordIndex].Status = WordUntyped
	}
	s.wordIndex--
	s.input = []rune(delta.typed)
	s.wordStates[s.wordIndex] = WordState{Status: WordCurrent}
}

// Tick advances elapsed time from an external timestamp and, in time mode,
// completes the session when the limit is reached. Non-monotonic timestamps
// clamp to the previous elapsed value.
func (s *Session) Tick(now time.Time) {
	if s.phase != PhaseActive {
		return
	}
	elapsed := now.Sub(s.startedAt)
	if elapsed < s.elapsed {
		elapsed = s.elapsed
	}
	s.elapsed = elapsed
	if s.cfg.Mode == model.ModeTime {
		limit := time.Duration(s.cfg.TimeLimitSeconds) * time.Second
		if s.elapsed >= limit {
			s.elapsed = limit
			s.phase = PhaseCompleted
		}
	}
}

// Metrics derives the live or final report from the current counters and
// elapsed time.
func (s *Session) Metrics() metrics.Report {
	return metrics.Compute(
		s.counters.CorrectChars,
		s.counters.IncorrectChars,
		s.counters.TotalChars,
		s.elapsed,
	)
}

func (s *Session) checkCompletion() {
	if s.cfg.Mode != model.ModeWords {
		return
	}
	if s.wordIndex >= s.cfg.WordCount || s.wordIndex >= len(s.words) {
		s.markElapsed()
		s.phase = PhaseCompleted
	}
}

func (s *Session) fail() {
	s.markElapsed()
	s.failedWord = s.words[s.wordIndex]
	s.phase = PhaseFailed
}

// markElapsed pins elapsed time at a phase transition so final metrics use
// the terminal timestamp.
func (s *Session) markElapsed() {
	if s.phase != PhaseActive {
		return
	}
	elapsed := s.clock().Sub(s.startedAt)
	if elapsed > s.elapsed {
		s.elapsed = elapsed
	}
}

// refill appends a fresh word batch when the time-mode tail runs low, so an
// active session never exhausts its word list.
func (s *Session) refill() {
	if len(s.words)-s.wordIndex > refillMargin {
		return
	}
	batch := s.gen.Batch(s.cfg, refillBatch)
	for _, word := range batch {
		s.words = append(s.words, word)
		s.charStates = append(s.charStates, make([]CharStatus, len([]rune(word))))
		s.wordStates = append(s.wordStates, WordState{})
	}
}
