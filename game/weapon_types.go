package game

// BulletType is the firing pattern of a player gun
type BulletType string

const (
	BulletNormal BulletType = "normal"
	BulletDouble BulletType = "double"
	BulletTriple BulletType = "triple"
	BulletFan5   BulletType = "fan5"
	BulletFan7   BulletType = "fan7"
	BulletFan10  BulletType = "fan10"
)

// BulletStyle changes bullet size and look, never the pattern
type BulletStyle string

const (
	StyleNormal   BulletStyle = "normal"
	StyleLaser    BulletStyle = "laser"
	StylePlasma   BulletStyle = "plasma"
	StyleElectric BulletStyle = "electric"
)

// BulletStyleConfig holds the projectile size for a style
type BulletStyleConfig struct {
	Width  float64
	Height float64
}

// GetBulletStyleConfig returns the projectile size for a style
func GetBulletStyleConfig(style BulletStyle) BulletStyleConfig {
	switch style {
	case StyleLaser:
		return BulletStyleConfig{Width: 3, Height: 18} // thin and tall
	case StylePlasma:
		return BulletStyleConfig{Width: 8, Height: 14} // wide and short
	case StyleElectric:
		return BulletStyleConfig{Width: 5, Height: 14}
	default:
		return BulletStyleConfig{Width: 4, Height: 12}
	}
}

// Form is the ship chassis picked up through morph power-ups
type Form string

const (
	FormNormal Form = "normal"
	FormAgile  Form = "agile"
	FormHeavy  Form = "heavy"
)

// FormStats fixes the movement speed and damage hitbox of a form
type FormStats struct {
	Speed       float64
	HitboxScale float64
}

// GetFormStats returns the stats for a form
func GetFormStats(f Form) FormStats {
	switch f {
	case FormAgile:
		return FormStats{Speed: 8, HitboxScale: 0.85}
	case FormHeavy:
		return FormStats{Speed: 4, HitboxScale: 1.2}
	default:
		return FormStats{Speed: 6, HitboxScale: 1.0}
	}
}

var formCycle = []Form{FormNormal, FormAgile, FormHeavy}

// NextForm cycles normal -> agile -> heavy -> normal
func NextForm(f Form) Form {
	for i, c := range formCycle {
		if c == f {
			return formCycle[(i+1)%len(formCycle)]
		}
	}
	return FormNormal
}

// WeaponStep is one rung of the bullet power-up ladder
type WeaponStep struct {
	Type  BulletType
	Style BulletStyle
}

// WeaponLadder is the fixed order bullet power-ups walk through
var WeaponLadder = []WeaponStep{
	{BulletNormal, StyleNormal},
	{BulletDouble, StyleNormal},
	{BulletTriple, StyleNormal},
	{BulletFan5, StyleNormal},
	{BulletFan7, StyleNormal},
	{BulletFan7, StyleLaser},
	{BulletFan10, StyleNormal},
	{BulletFan10, StyleLaser},
	{BulletFan10, StylePlasma},
	{BulletFan10, StyleElectric},
}

// ladderWrapIndex is where a pickup at the top of the ladder lands
const ladderWrapIndex = 6

// NextWeapon returns the step after (t, s). A pair not on the ladder counts as the
// first step; the last step wraps to (fan10, normal).
func NextWeapon(t BulletType, s BulletStyle) WeaponStep {
	idx := 0
	for i, step := range WeaponLadder {
		if step.Type == t && step.Style == s {
			idx = i
			break
		}
	}
	if idx >= len(WeaponLadder)-1 {
		return WeaponLadder[ladderWrapIndex]
	}
	return WeaponLadder[idx+1]
}

// PowerUpKind is the effect of a pickup
type PowerUpKind string

const (
	PowerUpBullet PowerUpKind = "bullet"
	PowerUpLife   PowerUpKind = "life"
	PowerUpMorph  PowerUpKind = "morph"
	PowerUpShield PowerUpKind = "shield"
)

func (k PowerUpKind) valid() bool {
	switch k {
	case PowerUpBullet, PowerUpLife, PowerUpMorph, PowerUpShield:
		return true
	}
	return false
}
