package game

import (
	"math/rand"
	"time"
)

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Unit headings. The origin is the top-left corner, Y grows downward.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Status represents the game's coarse lifecycle state
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "notStarted"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// WallPolicy governs what happens when the head crosses the grid boundary
type WallPolicy int

const (
	WallLethal WallPolicy = iota // Hitting the border ends the game
	WallWrap                     // The head wraps to the opposite side
)

func (w WallPolicy) String() string {
	if w == WallWrap {
		return "wrap"
	}
	return "lethal"
}

// Rules bundles the per-variant constants. The two shipped variants are
// Classic and Arcade; everything that differs between them lives here so the
// engine itself has a single code path.
type Rules struct {
	Name          string
	GridSize      int
	Reward        int           // Score gained per food eaten
	InitialLength int           // Snake length after reset
	StartInterval time.Duration // Tick interval after reset
	MinInterval   time.Duration // Floor for the speed ramp and manual adjust
	MaxInterval   time.Duration // Ceiling for manual adjust
	SpeedStep     time.Duration // Interval decrease per food eaten (0 = constant speed)
	AdjustStep    time.Duration // Manual speed adjust step (0 = disabled)
	WallPolicy    WallPolicy    // Policy after reset
	AllowToggle   bool          // Whether the wall policy may be toggled between games
	StartOnInput  bool          // Whether a directional key starts a NotStarted game
}

// Snapshot is a copy of the current game for the presentation layer
type Snapshot struct {
	GridSize   int     `json:"gridSize"`
	Snake      []Point `json:"snake"`
	Food       Point   `json:"food"`
	Score      int     `json:"score"`
	IntervalMs int     `json:"intervalMs"`
	Status     string  `json:"status"`
	WallPolicy string  `json:"wallPolicy"`
	Variant    string  `json:"variant"`
}

// Game represents the main game state
type Game struct {
	Rules       Rules
	Snake       []Point // Head at index 0
	Direction   Point   // Pending heading, applied on the next tick
	LastMoveDir Point   // Heading of the last performed move
	Food        Point
	Score       int
	Interval    time.Duration // Current tick interval
	Status      Status
	Walls       WallPolicy

	rng *rand.Rand
}
