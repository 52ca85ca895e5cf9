package parameter

import "time"

// Falling Block Timing
const (
	// GravityInterval is the time per row at level 0
	GravityInterval = 600 * time.Millisecond

	// GravityLevelStep shortens the gravity interval per level
	GravityLevelStep = 45 * time.Millisecond

	// GravityMinInterval bounds gravity at high levels
	GravityMinInterval = 80 * time.Millisecond

	// FastDropInterval is the time per row while fast drop is held
	FastDropInterval = 35 * time.Millisecond

	// RepeatDelay is the hold time before lateral auto-repeat starts
	RepeatDelay = 170 * time.Millisecond

	// RepeatInterval is the lateral auto-repeat period
	RepeatInterval = 60 * time.Millisecond
)

// Scoring
const (
	// LinesPerLevel is the cleared line count between levels
	LinesPerLevel = 10
)

// LineScores is the base score per simultaneous line clear, multiplied by level+1
var LineScores = [5]int{0, 100, 300, 500, 800}

// Board placement as canvas fractions; the board sits below the button strip
const (
	BoardTop    = 0.0625
	BoardBottom = 1.0
)
