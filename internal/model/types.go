// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Mode selects how a session completes.
type Mode string

// Supported modes.
const (
	ModeTime  Mode = "time"
	ModeWords Mode = "words"
)

// Difficulty selects the failure rules applied while typing.
type Difficulty string

// Supported difficulties.
const (
	DifficultyNormal Difficulty = "normal"
	DifficultyExpert Difficulty = "expert"
	DifficultyMaster Difficulty = "master"
)

// LengthClass filters the word pool by alphanumeric length.
type LengthClass string

// Supported length classes.
const (
	LengthAll    LengthClass = "all"
	LengthShort  LengthClass = "short"  // <= 4
	LengthMedium LengthClass = "medium" // 5-8
	LengthLong   LengthClass = "long"   // 9-12
	LengthThicc  LengthClass = "thicc"  // > 12
)

// Config defines an immutable per-session test configuration.
type Config struct {
	Mode               Mode
	TimeLimitSeconds   int
	WordCount          int
	Difficulty         Difficulty
	IncludeNumbers     bool
	IncludePunctuation bool
	WordLengthClass    LengthClass
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTime:
		return ModeTime, nil
	case ModeWords:
		return ModeWords, nil
	}
	return "", fmt.Errorf("unknown mode %q (time, words)", s)
}

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyExpert:
		return DifficultyExpert, nil
	case DifficultyMaster:
		return DifficultyMaster, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (normal, expert, master)", s)
}

// ParseLengthClass parses a word length class name.
func ParseLengthClass(s string) (LengthClass, error) {
	switch LengthClass(strings.ToLower(strings.TrimSpace(s))) {
	case LengthAll:
		return LengthAll, nil
	case LengthShort:
		return LengthShort, nil
	case LengthMedium:
		return LengthMedium, nil
	case LengthLong:
		return LengthLong, nil
	case LengthThicc:
		return LengthThicc, nil
	}
	return "", fmt.Errorf("unknown length class %q (all, short, medium, long, thicc)", s)
}

// Validate checks that a config can start a session.
func (c Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return err
	}
	if _, err := ParseLengthClass(string(c.WordLengthClass)); err != nil {
		return err
	}
	if c.Mode == ModeTime && c.TimeLimitSeconds <= 0 {
		return fmt.Errorf("time limit must be > 0")
	}
	if c.WordCount <= 0 {
		return fmt.Errorf("word count must be > 0")
	}
	return nil
}
