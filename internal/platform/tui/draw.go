package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const (
	obstacleRune = '█'
	cloudRune    = '░'
	bossRune     = '▓'
	avatarRune   = '●'
	shieldRune   = '◉'
)

// drawFrame draws a snapshot into scr. The achievements screen is rendered
// as a table by the model and is not drawn here.
func drawFrame(scr *core.Screen, snap flappy.Snapshot, toast string) {
	scr.Clear()
	v := newViewport(scr.Width(), scr.Height(), snap.WorldW, snap.WorldH)

	switch snap.Mode {
	case flappy.ModeMenu:
		drawClouds(scr, v, snap)
		drawMenu(scr, snap)
	case flappy.ModePlaying:
		drawField(scr, v, snap)
		drawHUD(scr, snap)
	case flappy.ModeGameOver:
		drawField(scr, v, snap)
		drawHUD(scr, snap)
		drawGameOver(scr, snap)
	case flappy.ModeShop:
		drawShop(scr, v, snap)
	}

	if toast != "" {
		scr.DrawTextCentered(hudRows, " "+toast+" ", core.ColorBrightYellow)
	}
}

func drawHUD(scr *core.Screen, snap flappy.Snapshot) {
	left := fmt.Sprintf("Score %d  Level %d  Coins %d  Best %d", snap.Score, snap.Level, snap.Coins, snap.HighScore)
	scr.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	var right string
	if snap.Avatar.PowerUp != flappy.PowerUpNone {
		secs := float64(snap.Avatar.PowerUpTicks) / float64(max(snap.TickRate, 1))
		right = fmt.Sprintf("%s %.1fs", snap.Avatar.PowerUp, secs)
	}
	if snap.Features.DayNight {
		sky := "☀"
		if !snap.IsDay {
			sky = "☾"
		}
		right += " " + sky
	}
	if right != "" {
		x := scr.Width() - utf8.RuneCountInString(right) - 1
		scr.DrawTextColored(x, 0, right, core.ColorBrightCyan)
	}
}

func drawClouds(scr *core.Screen, v viewport, snap flappy.Snapshot) {
	color := core.ColorWhite
	if !snap.IsDay {
		color = core.ColorGray
	}
	for _, c := range snap.Clouds {
		scr.FillRect(v.rect(core.BoxAt(c.X, c.Y, c.Width, c.Height)), cloudRune, color)
	}
}

func drawField(scr *core.Screen, v viewport, snap flappy.Snapshot) {
	drawClouds(scr, v, snap)

	o := snap.Obstacle
	scr.FillRect(v.rect(o.TopBox()), obstacleRune, core.ColorGreen)
	scr.FillRect(v.rect(o.BottomBox(snap.WorldH)), obstacleRune, core.ColorGreen)

	if snap.Boss.Active {
		r := v.rect(snap.Boss.Box())
		scr.FillRect(r, bossRune, core.ColorMagenta)
		scr.DrawTextColored(r.X, max(r.Y-1, hudRows), fmt.Sprintf("BOSS %d", snap.Boss.Health), core.ColorBrightMagenta)
	}

	for _, p := range snap.Pickups {
		color := core.ColorBrightCyan
		if p.Type == flappy.PowerUpSlowMotion {
			color = core.ColorBrightMagenta
		}
		scr.SetColored(v.col(p.X), v.row(p.Y), p.Type.Glyph(), color)
	}

	a := snap.Avatar
	glyph, color := avatarRune, cosmeticColor(a.CosmeticColor)
	if a.PowerUp == flappy.PowerUpImmunity && (a.PowerUpTicks/10)%2 == 0 {
		glyph, color = shieldRune, core.ColorBrightWhite
	}
	scr.SetColored(v.col(a.X), v.row(a.Y), glyph, color)
}

func drawMenu(scr *core.Screen, snap flappy.Snapshot) {
	y := max(scr.Height()/4, 1)
	scr.DrawTextCentered(y, "F L A P P Y", core.ColorBrightYellow)
	scr.DrawTextCentered(y+1, snap.Title, core.ColorGray)

	y += 3
	scr.DrawTextCentered(y, "Space  start", core.ColorBrightWhite)
	if snap.Features.Shop {
		y++
		scr.DrawTextCentered(y, "S  shop", core.ColorWhite)
	}
	if snap.Features.Achievements {
		y++
		scr.DrawTextCentered(y, "A  achievements", core.ColorWhite)
	}

	y += 2
	scr.DrawTextCentered(y, fmt.Sprintf("High score %d   Coins %d", snap.HighScore, snap.Coins), core.ColorBrightCyan)
	if snap.Armed != flappy.PowerUpNone {
		y++
		scr.DrawTextCentered(y, "Next run starts with "+snap.Armed.String(), core.ColorBrightMagenta)
	}

	if snap.Features.Daily && snap.Daily.Target > 0 {
		y += 2
		status, color := "", core.ColorYellow
		if snap.Daily.Completed {
			status, color = "  ✓", core.ColorBrightGreen
		}
		scr.DrawTextCentered(y, "Daily: "+snap.Daily.Description+status, color)
	}

	scr.SetColored(scr.Width()/2, y+2, avatarRune, cosmeticColor(snap.Avatar.CosmeticColor))
}

func drawGameOver(scr *core.Screen, snap flappy.Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("Best  %d", snap.HighScore),
	}
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		lines = append(lines, "New high score!")
	}

	w := 24
	h := len(lines) + 2
	box := core.NewRect((scr.Width()-w)/2, (scr.Height()-h)/2, w, h)
	scr.FillRect(box, ' ', core.ColorDefault)
	scr.DrawBox(box, core.ColorBrightRed)
	for i, line := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		x := box.X + (w-utf8.RuneCountInString(line))/2
		scr.DrawTextColored(x, box.Y+1+i, line, color)
	}
}

// drawShop writes each item label on the row holding its hitbox center so
// a click on the label lands inside the item.
func drawShop(scr *core.Screen, v viewport, snap flappy.Snapshot) {
	header := fmt.Sprintf("SHOP   Coins %d", snap.Coins)
	if snap.Armed != flappy.PowerUpNone {
		header += "   Armed: " + snap.Armed.String()
	}
	scr.DrawTextColored(0, 0, header, core.ColorBrightYellow)

	for i, e := range snap.Shop {
		hb := e.Hitbox
		cx := v.col(float64(hb.X) + float64(hb.W)/2)
		row := v.row(float64(hb.Y) + float64(hb.H)/2)

		label := fmt.Sprintf("%s  %d", e.Item.Name, e.Item.Cost)
		color := core.ColorGray
		switch {
		case e.Equipped:
			label += "  equipped"
			color = core.ColorBrightGreen
		case e.Owned:
			label += "  owned"
			color = core.ColorGreen
		case e.Affordable:
			color = core.ColorWhite
		}
		if i == snap.ShopCursor {
			label = "> " + label + " <"
			color = core.ColorBrightYellow
		}

		scr.DrawTextColored(cx-utf8.RuneCountInString(label)/2, row, label, color)
	}
}
