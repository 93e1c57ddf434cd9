package main

import (
	"flag"
	"fmt"
	"time"

	"snakeweb/pkg/game"
	"snakeweb/pkg/input"
	"snakeweb/pkg/renderer"
)

func main() {
	variant := flag.String("variant", "classic", "game variant: classic or arcade")
	flag.Parse()

	rules := game.ClassicRules()
	if *variant == "arcade" {
		rules = game.ArcadeRules()
	}

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	// Initialize renderer
	render := renderer.NewTerminalRenderer(rules.GridSize)
	render.HideCursor()
	defer render.ShowCursor()

	// Create new game
	g := game.New(rules)

	// Get input channel
	inputChan := inputHandler.GetInputChan()

	// The tick timer is torn down and re-created whenever the interval
	// changes, so speed adjustments take effect on the next tick.
	timer := time.NewTimer(g.Interval)
	rearm := func() {
		timer.Stop()
		timer = time.NewTimer(g.Interval)
	}

	// Initial render
	render.Render(g)

	// Main game loop
	for {
		select {
		case inputEvent := <-inputChan:
			if input.IsQuit(inputEvent) {
				fmt.Println("\n  Thanks for playing! 👋")
				return
			}

			if input.IsRestart(inputEvent) && g.Status == game.StatusGameOver {
				g.Restart()
				rearm()
			}

			if input.IsPause(inputEvent) {
				g.TogglePause()
			}

			if input.IsSpeedUp(inputEvent) {
				g.SpeedUp()
				rearm()
			}
			if input.IsSpeedDown(inputEvent) {
				g.SlowDown()
				rearm()
			}
			if input.IsWallToggle(inputEvent) {
				g.ToggleWallPolicy()
			}

			if inputDir, isValid := input.ParseDirection(inputEvent); isValid {
				g.SetDirection(inputDir)
			}

			render.Render(g)

		case <-timer.C:
			before := g.Interval
			g.Advance()
			render.Render(g)
			if g.Interval != before {
				// Speed ramp kicked in; arm the next tick with the new pace
				rearm()
			} else {
				timer.Reset(g.Interval)
			}
		}
	}
}
