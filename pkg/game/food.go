package game

// placeFood draws a random cell that is not covered by the snake.
// Plain rejection sampling: the snake never fills the whole grid in
// practice, so the loop terminates with probability 1. There is
// deliberately no attempt cap; a fully occupied grid is a known
// degenerate case, not something this game can reach.
func (g *Game) placeFood() Point {
	for {
		p := Point{
			X: g.rng.Intn(g.Rules.GridSize),
			Y: g.rng.Intn(g.Rules.GridSize),
		}
		if !g.snakeAt(p) {
			return p
		}
	}
}

// snakeAt reports whether any snake segment covers p
func (g *Game) snakeAt(p Point) bool {
	for _, s := range g.Snake {
		if s == p {
			return true
		}
	}
	return false
}
