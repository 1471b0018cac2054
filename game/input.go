package game

// Point is a screen position
type Point struct {
	X, Y float64
}

// Intent is one player's abstract input for a tick
type Intent struct {
	Up, Down, Left, Right bool

	// Fire and Missile request a shot; cooldowns still apply
	Fire    bool
	Missile bool

	// Target, when set, puts the ship centre on this point and overrides the directions
	Target *Point
}

// Direction returns the unit steps of the held directions
func (in Intent) Direction() (float64, float64) {
	var dx, dy float64
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// intentFor bounds-checks the per-player intent slice; a missing entry is the zero intent
func intentFor(intents []Intent, i int) Intent {
	if i < 0 || i >= len(intents) {
		return Intent{}
	}
	return intents[i]
}
