package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// defaultBindings maps each logical key to arrow keys and WASD
var defaultBindings = map[Key][]ebiten.Key{
	KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	KeyJump:  {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
}

// KeyboardInput provides input from the keyboard
type KeyboardInput struct {
	bindings map[Key][]ebiten.Key
}

// NewKeyboardInput creates a keyboard input source with the default bindings
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{bindings: defaultBindings}
}

// IsHeld reports whether any bound key is down
func (k *KeyboardInput) IsHeld(key Key) bool {
	for _, physical := range k.bindings[key] {
		if ebiten.IsKeyPressed(physical) {
			return true
		}
	}
	return false
}

// IsPressed reports whether any bound key went down this tick
func (k *KeyboardInput) IsPressed(key Key) bool {
	for _, physical := range k.bindings[key] {
		if inpututil.IsKeyJustPressed(physical) {
			return true
		}
	}
	return false
}
