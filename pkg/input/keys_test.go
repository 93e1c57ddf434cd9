package input

import (
	"testing"

	"github.com/eiannone/keyboard"

	"snakeweb/pkg/game"
)

// TestParseKeyName covers the browser key identifier mapping
func TestParseKeyName(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		dir   game.Point
		valid bool
	}{
		{"arrow up", "ArrowUp", game.Up, true},
		{"arrow down", "ArrowDown", game.Down, true},
		{"arrow left", "ArrowLeft", game.Left, true},
		{"arrow right", "ArrowRight", game.Right, true},
		{"w lower", "w", game.Up, true},
		{"w upper", "W", game.Up, true},
		{"s", "s", game.Down, true},
		{"a", "a", game.Left, true},
		{"d", "d", game.Right, true},
		{"unmapped letter", "x", game.Point{}, false},
		{"space is not a direction", " ", game.Point{}, false},
		{"empty", "", game.Point{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir, valid := ParseKeyName(tc.key)
			if valid != tc.valid {
				t.Fatalf("ParseKeyName(%q) valid = %v, expected %v", tc.key, valid, tc.valid)
			}
			if dir != tc.dir {
				t.Errorf("ParseKeyName(%q) = %v, expected %v", tc.key, dir, tc.dir)
			}
		})
	}
}

// TestIsPauseKeyName checks the pause keys, space included
func TestIsPauseKeyName(t *testing.T) {
	for _, key := range []string{" ", "Space", "p", "P"} {
		if !IsPauseKeyName(key) {
			t.Errorf("%q should be a pause key", key)
		}
	}
	for _, key := range []string{"x", "ArrowUp", ""} {
		if IsPauseKeyName(key) {
			t.Errorf("%q should not be a pause key", key)
		}
	}
}

// TestParseDirection covers the terminal key mapping
func TestParseDirection(t *testing.T) {
	tests := []struct {
		name  string
		in    KeyInput
		dir   game.Point
		valid bool
	}{
		{"arrow up", KeyInput{Key: keyboard.KeyArrowUp}, game.Up, true},
		{"arrow down", KeyInput{Key: keyboard.KeyArrowDown}, game.Down, true},
		{"arrow left", KeyInput{Key: keyboard.KeyArrowLeft}, game.Left, true},
		{"arrow right", KeyInput{Key: keyboard.KeyArrowRight}, game.Right, true},
		{"wasd w", KeyInput{Char: 'w'}, game.Up, true},
		{"wasd S upper", KeyInput{Char: 'S'}, game.Down, true},
		{"wasd a", KeyInput{Char: 'a'}, game.Left, true},
		{"wasd d", KeyInput{Char: 'd'}, game.Right, true},
		{"unmapped", KeyInput{Char: 'z'}, game.Point{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir, valid := ParseDirection(tc.in)
			if valid != tc.valid || dir != tc.dir {
				t.Errorf("ParseDirection(%+v) = %v,%v, expected %v,%v",
					tc.in, dir, valid, tc.dir, tc.valid)
			}
		})
	}
}

// TestCommandKeys checks the non-directional command helpers
func TestCommandKeys(t *testing.T) {
	if !IsPause(KeyInput{Key: keyboard.KeySpace}) || !IsPause(KeyInput{Char: 'p'}) {
		t.Error("Space and p should pause")
	}
	if !IsQuit(KeyInput{Char: 'q'}) || !IsQuit(KeyInput{Key: keyboard.KeyEsc}) {
		t.Error("q and escape should quit")
	}
	if !IsRestart(KeyInput{Char: 'R'}) {
		t.Error("R should restart")
	}
	if !IsSpeedUp(KeyInput{Char: '+'}) || !IsSpeedUp(KeyInput{Char: '='}) {
		t.Error("+ and = should speed up")
	}
	if !IsSpeedDown(KeyInput{Char: '-'}) {
		t.Error("- should slow down")
	}
	if !IsWallToggle(KeyInput{Char: 't'}) {
		t.Error("t should toggle walls")
	}
	if IsPause(KeyInput{Char: 'x'}) || IsQuit(KeyInput{Char: 'x'}) {
		t.Error("x should map to nothing")
	}
}
