package config

import "time"

// Game board dimensions
const (
	GridSize = 20
)

// Tick intervals. Classic keeps a constant pace; Arcade speeds up a little
// on every food eaten and also lets the player adjust manually.
const (
	ClassicInterval     = 200 * time.Millisecond
	ArcadeStartInterval = 200 * time.Millisecond
	ArcadeMinInterval   = 50 * time.Millisecond
	ArcadeSpeedStep     = 5 * time.Millisecond
	SpeedAdjustStep     = 25 * time.Millisecond
	MaxInterval         = 500 * time.Millisecond
)

// Scoring and starting length per variant
const (
	ClassicReward      = 1
	ArcadeReward       = 10
	ClassicStartLength = 1
	ArcadeStartLength  = 3
)

// Emoji characters for terminal rendering
const (
	CharEmpty  = "  " // Two spaces to match emoji width
	CharWall   = "⬜"
	CharPortal = "🔹" // Border marker when walls wrap around
	CharHead   = "🟢"
	CharBody   = "🟩"
	CharFood   = "🍎"
	CharCrash  = "💥"
)
