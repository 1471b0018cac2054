package screen

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"skyraid/game"
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (r *Renderer) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color, a align) {
	if r.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineHeight
	switch a {
	case alignCenter:
		op.PrimaryAlign = text.AlignCenter
	case alignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(dst, s, r.face, op)
}

// weaponLabel formats a player's loadout, e.g. "P1 FAN5 LASER AGILE +SHIELD"
func weaponLabel(w game.WeaponTags) string {
	parts := []string{
		fmt.Sprintf("P%d", w.Player),
		strings.ToUpper(string(w.Weapon)),
		strings.ToUpper(string(w.Style)),
		strings.ToUpper(string(w.Form)),
	}
	if w.Shield {
		parts = append(parts, "+SHIELD")
	}
	return strings.Join(parts, " ")
}

// statusLines are the left-hand HUD lines
func statusLines(st game.Stats) []string {
	lines := []string{
		fmt.Sprintf("SCORE %d  LV %d", st.Score, st.Level),
		fmt.Sprintf("KILLS %d  MAX COMBO %d", st.Kills, st.MaxCombo),
	}
	if st.Combo > 1 {
		lines = append(lines, fmt.Sprintf("COMBO %d  x%d", st.Combo, st.ComboMultiplier))
	}
	for i, lives := range st.Lives {
		lines = append(lines, fmt.Sprintf("P%d LIVES %d", i+1, lives))
	}
	return lines
}

// drawHUD draws scores, lives, loadouts, the boss bar and phase banners
func (r *Renderer) drawHUD(dst *ebiten.Image, st game.Stats, w, h int) {
	for i, line := range statusLines(st) {
		r.drawText(dst, line, hudMarginX, float64(hudMarginY+i*hudLineHeight), colorWhite, alignLeft)
	}

	for i, wt := range st.Weapons {
		y := float64(h - hudMarginY - (len(st.Weapons)-i)*hudLineHeight*2)
		r.drawText(dst, weaponLabel(wt), hudMarginX, y, colorLightBlue, alignLeft)
		barW := float32(80)
		vector.DrawFilledRect(dst, hudMarginX, float32(y)+hudLineHeight, barW, 4, colorDarkBlue, false)
		clr := colorOrange
		if wt.MissileCharge >= 1 {
			clr = colorGreen
		}
		vector.DrawFilledRect(dst, hudMarginX, float32(y)+hudLineHeight, barW*float32(wt.MissileCharge), 4, clr, false)
	}

	if st.HasBoss {
		barW := float32(w) * 0.6
		x := (float32(w) - barW) / 2
		vector.DrawFilledRect(dst, x, hudMarginY, barW, bossBarHeight, colorDarkGray, false)
		vector.DrawFilledRect(dst, x, hudMarginY, barW*float32(st.BossHPRatio), bossBarHeight, colorRed, false)
		vector.StrokeRect(dst, x, hudMarginY, barW, bossBarHeight, 1, colorWhite, false)
		r.drawText(dst, "BOSS", float64(w)/2, hudMarginY+bossBarHeight+2, colorRed, alignCenter)
	}

	switch st.Phase {
	case game.PhaseBossWarning:
		if (st.BossWarningTicks/10)%2 == 0 {
			r.drawText(dst, "WARNING: BOSS APPROACHING", float64(w)/2, float64(h)/2-20, colorRed, alignCenter)
		}
	case game.PhaseLevelClear:
		r.drawText(dst, fmt.Sprintf("LEVEL %d CLEAR", st.Level), float64(w)/2, float64(h)/2-20, colorLightGreen, alignCenter)
	}
}

// drawStartScreen draws the title and player selection
func (r *Renderer) drawStartScreen(dst *ebiten.Image, w, h, tick int) {
	cx := float64(w) / 2
	r.drawText(dst, "S K Y R A I D", cx, float64(h)/4, colorCyan, alignCenter)
	r.drawText(dst, "- PIXEL EDITION -", cx, float64(h)/4+24, colorLavender, alignCenter)

	if (tick/30)%2 == 0 {
		r.drawText(dst, "PRESS 1 FOR ONE PLAYER", cx, float64(h)/2, colorWhite, alignCenter)
		r.drawText(dst, "PRESS 2 FOR TWO PLAYERS", cx, float64(h)/2+20, colorWhite, alignCenter)
	}

	help := []string{
		"P1  WASD MOVE  J FIRE  K MISSILE",
		"P2  ARROWS MOVE  NUM1 FIRE  NUM2 MISSILE",
		"F1 HITBOXES  M MUTE  ALT+ENTER FULLSCREEN",
		"ESC QUIT",
	}
	for i, line := range help {
		r.drawText(dst, line, cx, float64(h)*0.7+float64(i*hudLineHeight), colorLightGray, alignCenter)
	}
}

// drawGameOver draws the results panel and the leaderboard
func (r *Renderer) drawGameOver(dst *ebiten.Image, res game.Results, w, h, tick int) {
	cx := float64(w) / 2
	panelW, panelH := float32(w)-80, float32(h)-160
	vector.DrawFilledRect(dst, 40, 80, panelW, panelH, colorPanel, false)
	vector.StrokeRect(dst, 40, 80, panelW, panelH, 2, colorDarkBlue, false)

	r.drawText(dst, "GAME OVER", cx, 100, colorRed, alignCenter)
	lines := []string{
		fmt.Sprintf("SCORE     %d", res.Score),
		fmt.Sprintf("KILLS     %d", res.Kills),
		fmt.Sprintf("MAX COMBO %d", res.MaxCombo),
		fmt.Sprintf("LEVEL     %d", res.Level),
	}
	for i, line := range lines {
		r.drawText(dst, line, cx, 140+float64(i*hudLineHeight), colorWhite, alignCenter)
	}

	y := 140 + float64(len(lines)+1)*hudLineHeight
	r.drawText(dst, "LEADERBOARD", cx, y, colorGold, alignCenter)
	if len(res.Leaderboard) == 0 {
		r.drawText(dst, "NO SCORES", cx, y+hudLineHeight*1.5, colorDarkGray, alignCenter)
	}
	highlighted := false
	for i, score := range res.Leaderboard {
		clr := colorLightGray
		if score == res.Score && !highlighted {
			clr = colorYellow
			highlighted = true
		}
		r.drawText(dst, fmt.Sprintf("%2d. %8d", i+1, score), cx, y+float64(i+1)*hudLineHeight+8, clr, alignCenter)
	}

	if (tick/30)%2 == 0 {
		r.drawText(dst, "ENTER TO CONTINUE  ESC TO QUIT", cx, float64(h)-60, colorWhite, alignCenter)
	}
}
