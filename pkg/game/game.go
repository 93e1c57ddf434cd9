package game

import (
	"math/rand"
	"time"

	"snakeweb/pkg/config"
)

// ClassicRules is the fixed-speed variant: lethal walls, one point per food,
// and the game starts as soon as a directional key arrives.
func ClassicRules() Rules {
	return Rules{
		Name:          "classic",
		GridSize:      config.GridSize,
		Reward:        config.ClassicReward,
		InitialLength: config.ClassicStartLength,
		StartInterval: config.ClassicInterval,
		MinInterval:   config.ClassicInterval,
		MaxInterval:   config.ClassicInterval,
		WallPolicy:    WallLethal,
		StartOnInput:  true,
	}
}

// ArcadeRules is the ramping variant: the interval shrinks on every food
// eaten, speed is manually adjustable, and the wall policy can be toggled
// between games.
func ArcadeRules() Rules {
	return Rules{
		Name:          "arcade",
		GridSize:      config.GridSize,
		Reward:        config.ArcadeReward,
		InitialLength: config.ArcadeStartLength,
		StartInterval: config.ArcadeStartInterval,
		MinInterval:   config.ArcadeMinInterval,
		MaxInterval:   config.MaxInterval,
		SpeedStep:     config.ArcadeSpeedStep,
		AdjustStep:    config.SpeedAdjustStep,
		WallPolicy:    WallLethal,
		AllowToggle:   true,
	}
}

// New creates a new game instance with a time-seeded food generator
func New(rules Rules) *Game {
	return NewSeeded(rules, time.Now().UnixNano())
}

// NewSeeded creates a new game instance with a fixed food-placement seed
func NewSeeded(rules Rules, seed int64) *Game {
	g := &Game{
		Rules: rules,
		Walls: rules.WallPolicy,
		rng:   rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g
}

// Reset restores the snake, food, score, speed and status to their initial
// values. The wall policy chosen before the previous game is kept.
func (g *Game) Reset() {
	center := g.Rules.GridSize / 2
	g.Snake = make([]Point, g.Rules.InitialLength)
	for i := range g.Snake {
		g.Snake[i] = Point{X: center - i, Y: center}
	}
	g.Direction = Right
	g.LastMoveDir = Point{}
	g.Score = 0
	g.Interval = g.Rules.StartInterval
	g.Status = StatusNotStarted
	g.Food = g.placeFood()
}

// Restart resets the game and puts it straight into the running state
func (g *Game) Restart() {
	g.Reset()
	g.Status = StatusRunning
}

// Start begins a game that has not started yet
func (g *Game) Start() {
	if g.Status == StatusNotStarted {
		g.Status = StatusRunning
	}
}

// Pause suspends tick advancement
func (g *Game) Pause() {
	if g.Status == StatusRunning {
		g.Status = StatusPaused
	}
}

// Resume continues a paused game
func (g *Game) Resume() {
	if g.Status == StatusPaused {
		g.Status = StatusRunning
	}
}

// TogglePause flips between running and paused. On a game that has not
// started yet it acts as Start, matching the space-bar behavior.
func (g *Game) TogglePause() {
	switch g.Status {
	case StatusNotStarted:
		g.Status = StatusRunning
	case StatusRunning:
		g.Status = StatusPaused
	case StatusPaused:
		g.Status = StatusRunning
	}
}

// Advance performs one simulation tick. It is a no-op unless the game is
// running; a collision is reported only through the status field.
func (g *Game) Advance() {
	if g.Status != StatusRunning {
		return
	}

	head := g.Snake[0]
	next := Point{X: head.X + g.Direction.X, Y: head.Y + g.Direction.Y}

	n := g.Rules.GridSize
	if next.X < 0 || next.X >= n || next.Y < 0 || next.Y >= n {
		if g.Walls == WallLethal {
			g.Status = StatusGameOver
			return
		}
		next.X = (next.X + n) % n
		next.Y = (next.Y + n) % n
	}

	// The whole current body counts here, including the tail cell this tick
	// is about to vacate. Moving into that cell still ends the game.
	for _, s := range g.Snake {
		if s == next {
			g.Status = StatusGameOver
			return
		}
	}

	g.Snake = append([]Point{next}, g.Snake...)
	if next == g.Food {
		g.Score += g.Rules.Reward
		if g.Rules.SpeedStep > 0 && g.Interval > g.Rules.MinInterval {
			g.Interval -= g.Rules.SpeedStep
			if g.Interval < g.Rules.MinInterval {
				g.Interval = g.Rules.MinInterval
			}
		}
		g.Food = g.placeFood()
	} else {
		g.Snake = g.Snake[:len(g.Snake)-1]
	}

	g.LastMoveDir = g.Direction
}

// SetDirection requests a new heading for the next tick. A request that is
// the exact reverse of the last performed move is ignored so the snake
// cannot fold back through its own neck. Returns whether the pending
// heading changed.
func (g *Game) SetDirection(dir Point) bool {
	if g.Status == StatusGameOver {
		return false
	}
	if g.Status == StatusNotStarted && g.Rules.StartOnInput {
		g.Status = StatusRunning
	}

	// LastMoveDir is zero before the very first move; compare against the
	// pending direction in that case.
	compare := g.LastMoveDir
	if compare == (Point{}) {
		compare = g.Direction
	}
	if dir.X+compare.X == 0 && dir.Y+compare.Y == 0 {
		return false
	}

	if g.Direction != dir {
		g.Direction = dir
		return true
	}
	return false
}

// AdjustSpeed shifts the tick interval by delta, clamped to the variant's
// bounds. No-op for variants without manual speed control.
func (g *Game) AdjustSpeed(delta time.Duration) {
	if g.Rules.AdjustStep == 0 || g.Status == StatusGameOver {
		return
	}
	g.Interval += delta
	if g.Interval < g.Rules.MinInterval {
		g.Interval = g.Rules.MinInterval
	}
	if g.Interval > g.Rules.MaxInterval {
		g.Interval = g.Rules.MaxInterval
	}
}

// SpeedUp shortens the tick interval by one manual step
func (g *Game) SpeedUp() {
	g.AdjustSpeed(-g.Rules.AdjustStep)
}

// SlowDown lengthens the tick interval by one manual step
func (g *Game) SlowDown() {
	g.AdjustSpeed(g.Rules.AdjustStep)
}

// ToggleWallPolicy switches between lethal and wrap-around walls. Only valid
// between games; mid-game calls are ignored.
func (g *Game) ToggleWallPolicy() {
	if !g.Rules.AllowToggle {
		return
	}
	if g.Status != StatusNotStarted && g.Status != StatusGameOver {
		return
	}
	if g.Walls == WallLethal {
		g.Walls = WallWrap
	} else {
		g.Walls = WallLethal
	}
}

// GetSnapshot returns a copy of the current game state for rendering
func (g *Game) GetSnapshot() Snapshot {
	snake := make([]Point, len(g.Snake))
	copy(snake, g.Snake)

	return Snapshot{
		GridSize:   g.Rules.GridSize,
		Snake:      snake,
		Food:       g.Food,
		Score:      g.Score,
		IntervalMs: int(g.Interval.Milliseconds()),
		Status:     g.Status.String(),
		WallPolicy: g.Walls.String(),
		Variant:    g.Rules.Name,
	}
}
