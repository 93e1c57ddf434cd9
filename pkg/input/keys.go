package input

import (
	"strings"

	"snakeweb/pkg/game"
)

// ParseKeyName maps a raw browser key identifier (KeyboardEvent.key) to a
// heading. The webserver forwards key events verbatim so the same mapping
// rules apply to both presentations.
func ParseKeyName(name string) (dir game.Point, isValid bool) {
	switch name {
	case "ArrowUp":
		return game.Up, true
	case "ArrowDown":
		return game.Down, true
	case "ArrowLeft":
		return game.Left, true
	case "ArrowRight":
		return game.Right, true
	}

	switch strings.ToLower(name) {
	case "w":
		return game.Up, true
	case "s":
		return game.Down, true
	case "a":
		return game.Left, true
	case "d":
		return game.Right, true
	}

	return game.Point{}, false
}

// IsPauseKeyName checks if a raw browser key identifier toggles pause
func IsPauseKeyName(name string) bool {
	return name == " " || name == "Space" || strings.ToLower(name) == "p"
}
