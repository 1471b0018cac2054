package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"skyraid/game"
)

// KeyReader reports whether a key is held (or just pressed, depending on the caller)
type KeyReader func(ebiten.Key) bool

// Bindings maps one player's controls to keys
type Bindings struct {
	Up, Down, Left, Right []ebiten.Key
	Fire, Missile         []ebiten.Key
}

var (
	// PlayerOneKeys is WASD to move, J to fire, K for a missile
	PlayerOneKeys = Bindings{
		Up:      []ebiten.Key{ebiten.KeyW},
		Down:    []ebiten.Key{ebiten.KeyS},
		Left:    []ebiten.Key{ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyD},
		Fire:    []ebiten.Key{ebiten.KeyJ},
		Missile: []ebiten.Key{ebiten.KeyK},
	}
	// PlayerTwoKeys is the arrow keys to move, keypad 1 to fire, keypad 2 for a missile
	PlayerTwoKeys = Bindings{
		Up:      []ebiten.Key{ebiten.KeyArrowUp},
		Down:    []ebiten.Key{ebiten.KeyArrowDown},
		Left:    []ebiten.Key{ebiten.KeyArrowLeft},
		Right:   []ebiten.Key{ebiten.KeyArrowRight},
		Fire:    []ebiten.Key{ebiten.KeyNumpad1},
		Missile: []ebiten.Key{ebiten.KeyNumpad2},
	}
)

func anyPressed(pressed KeyReader, keys []ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// Intent reads the bindings into a game intent
func (b Bindings) Intent(pressed KeyReader) game.Intent {
	return game.Intent{
		Up:      anyPressed(pressed, b.Up),
		Down:    anyPressed(pressed, b.Down),
		Left:    anyPressed(pressed, b.Left),
		Right:   anyPressed(pressed, b.Right),
		Fire:    anyPressed(pressed, b.Fire),
		Missile: anyPressed(pressed, b.Missile),
	}
}

// ReadIntents builds one intent per player from the keyboard state
func ReadIntents(players int, pressed KeyReader) []game.Intent {
	intents := []game.Intent{PlayerOneKeys.Intent(pressed)}
	if players > 1 {
		intents = append(intents, PlayerTwoKeys.Intent(pressed))
	}
	return intents
}

// menuAction is what a key press asks the controller to do
type menuAction int

const (
	actionNone menuAction = iota
	actionStartOne
	actionStartTwo
	actionReplay
	actionQuit
	actionAbort
)

// menuActionFor maps just-pressed keys to a controller transition for the current state
func menuActionFor(state game.State, justPressed KeyReader) menuAction {
	switch state {
	case game.StateStartScreen:
		switch {
		case anyPressed(justPressed, []ebiten.Key{ebiten.KeyEscape}):
			return actionQuit
		case anyPressed(justPressed, []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1}):
			return actionStartOne
		case anyPressed(justPressed, []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2}):
			return actionStartTwo
		}
	case game.StatePlaying:
		if justPressed(ebiten.KeyEscape) {
			return actionAbort
		}
	case game.StateGameOver:
		switch {
		case justPressed(ebiten.KeyEscape):
			return actionQuit
		case anyPressed(justPressed, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyJ, ebiten.KeyNumpad1, ebiten.KeyNumpadEnter}):
			return actionReplay
		}
	}
	return actionNone
}

// Touch tracks a drag-to-move finger and taps on the missile button.
// While a finger is down the ship follows it, keeping the initial offset, and fires automatically.
type Touch struct {
	missileX, missileY, missileR float64

	moveID  ebiten.TouchID
	moving  bool
	offsetX float64
	offsetY float64
	target  game.Point

	missileTapped bool
	used          bool
}

// NewTouch places the missile button in the lower right corner of a w x h screen
func NewTouch(w, h int) *Touch {
	return &Touch{
		missileX: float64(w) - 55,
		missileY: float64(h) - 65,
		missileR: 32,
	}
}

// Press handles a new finger at (x, y). The ship centre is needed to keep the drag offset.
func (t *Touch) Press(id ebiten.TouchID, x, y, shipX, shipY float64) {
	t.used = true
	dx, dy := x-t.missileX, y-t.missileY
	// generous hit area around the button
	if r := t.missileR * 1.6; dx*dx+dy*dy <= r*r {
		t.missileTapped = true
		return
	}
	if t.moving {
		return
	}
	t.moving = true
	t.moveID = id
	t.offsetX = shipX - x
	t.offsetY = shipY - y
	t.target = game.Point{X: shipX, Y: shipY}
}

// Move handles a finger moving to (x, y)
func (t *Touch) Move(id ebiten.TouchID, x, y float64) {
	if !t.moving || id != t.moveID {
		return
	}
	t.target = game.Point{X: x + t.offsetX, Y: y + t.offsetY}
}

// Release handles a finger lifting
func (t *Touch) Release(id ebiten.TouchID) {
	if t.moving && id == t.moveID {
		t.moving = false
	}
}

// Used reports whether the touch screen has been used at all
func (t *Touch) Used() bool { return t.used }

// Moving reports whether a finger is steering the ship
func (t *Touch) Moving() bool { return t.moving }

// Apply overrides the intent with touch steering, auto fire and a pending missile tap
func (t *Touch) Apply(in *game.Intent) {
	if t.moving {
		target := t.target
		in.Target = &target
		in.Fire = true
	}
	if t.missileTapped {
		in.Missile = true
		t.missileTapped = false
	}
}

// MissileButton returns the button centre and radius for drawing
func (t *Touch) MissileButton() (x, y, r float64) {
	return t.missileX, t.missileY, t.missileR
}
