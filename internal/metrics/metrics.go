// Package metrics derives typing performance figures from session counters.
package metrics

import (
	"math"
	"time"
)

// minMinutes floors elapsed time at a tenth of a second so WPM is defined
// from the very first keystroke.
const minMinutes = 0.1 / 60.0

// Report carries the derived figures for one session, live or final. Live
// and final reports use the same formulas, so a displayed final value is
// reproducible from the counters at the moment the session ended.
type Report struct {
	WPM            float64 // net WPM, penalized for incorrect characters
	GrossWPM       float64
	Accuracy       float64 // 0-100
	CorrectChars   int
	IncorrectChars int
	TotalChars     int
	Grade          string
}

// Compute derives a Report from character counters and elapsed time.
func Compute(correct, incorrect, total int, elapsed time.Duration) Report {
	minutes := elapsed.Minutes()
	if minutes < minMinutes {
		minutes = minMinutes
	}
	gross := (float64(correct) / 5.0) / minutes
	penalty := (float64(incorrect) / 5.0) / minutes
	net := gross - penalty
	if net < 0 {
		net = 0
	}
	accuracy := 100.0
	if total > 0 {
		accuracy = math.Round(float64(correct) / float64(total) * 100)
	}
	wpm := math.Round(net)
	return Report{
		WPM:            wpm,
		GrossWPM:       math.Round(gross),
		Accuracy:       accuracy,
		CorrectChars:   correct,
		IncorrectChars: incorrect,
		TotalChars:     total,
		Grade:          Grade(wpm, accuracy),
	}
}

// Grade maps a weighted accuracy/speed score to a letter band.
func Grade(wpm, accuracy float64) string {
	speed := wpm / 60.0
	if speed > 1 {
		speed = 1
	}
	score := accuracy*0.7 + speed*100*0.3
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "B+"
	case score >= 80:
		return "B"
	case score >= 75:
		return "C+"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D+"
	case score >= 40:
		return "D"
	}
	return "F"
}
