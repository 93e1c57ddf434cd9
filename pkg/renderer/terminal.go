package renderer

import (
	"fmt"
	"strings"

	"snakeweb/pkg/config"
	"snakeweb/pkg/game"
)

// TerminalRenderer handles terminal-based rendering. The drawn board is the
// playable grid plus a one-cell border frame.
type TerminalRenderer struct {
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellBorder
	cellHead
	cellBody
	cellFood
	cellCrash
)

// NewTerminalRenderer creates a new terminal renderer for an N-by-N grid
func NewTerminalRenderer(gridSize int) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, gridSize+2)
	for i := range board {
		board[i] = make([]int, gridSize+2)
	}

	return &TerminalRenderer{
		board: board,
	}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// Render renders the game state to the terminal
func (r *TerminalRenderer) Render(g *game.Game) {
	r.clearScreen()
	r.buffer.Reset()

	n := g.Rules.GridSize

	// Reset board
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	// Border frame around the playable grid
	for x := 0; x < n+2; x++ {
		r.board[0][x] = cellBorder
		r.board[n+1][x] = cellBorder
	}
	for y := 0; y < n+2; y++ {
		r.board[y][0] = cellBorder
		r.board[y][n+1] = cellBorder
	}

	// Food, then snake on top of it (head wins over everything)
	r.board[g.Food.Y+1][g.Food.X+1] = cellFood
	for i, p := range g.Snake {
		if i == 0 {
			r.board[p.Y+1][p.X+1] = cellHead
		} else {
			r.board[p.Y+1][p.X+1] = cellBody
		}
	}

	// Mark the crash site when the game ended at a wall or body cell
	if g.Status == game.StatusGameOver && len(g.Snake) > 0 {
		head := g.Snake[0]
		crash := game.Point{X: head.X + g.Direction.X, Y: head.Y + g.Direction.Y}
		if crash.X >= -1 && crash.X <= n && crash.Y >= -1 && crash.Y <= n {
			r.board[crash.Y+1][crash.X+1] = cellCrash
		}
	}

	borderChar := config.CharWall
	if g.Walls == game.WallWrap {
		borderChar = config.CharPortal
	}

	// Build output using string builder
	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Speed: %dms  |  Walls: %s  |  Variant: %s\n\n",
		g.Score, g.Interval.Milliseconds(), g.Walls, g.Rules.Name))

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellBorder:
				r.buffer.WriteString(borderChar)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  WASD or arrow keys to move, space to pause, Q to quit\n")
	if g.Rules.AdjustStep > 0 {
		r.buffer.WriteString("  +/- to change speed")
		if g.Rules.AllowToggle {
			r.buffer.WriteString(", T to toggle walls (between games)")
		}
		r.buffer.WriteString("\n")
	}

	switch g.Status {
	case game.StatusNotStarted:
		r.buffer.WriteString("\n  Press a direction key or space to start\n")
	case game.StatusPaused:
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press space to continue\n")
	case game.StatusGameOver:
		r.buffer.WriteString("\n  💀 GAME OVER! Press R to restart or Q to quit\n")
	}

	fmt.Print(r.buffer.String())
}
