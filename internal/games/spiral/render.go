package spiral

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/spiral/internal/core"
	"github.com/vovakirdan/spiral/internal/games/spiral/core"
)

// Visual characters for rendering
const (
	TrackChar      = '·'
	GoalChar       = '◎'
	SphereChar     = '●'
	InsertedChar   = '◉'
	FadeChar       = '○'
	ProjectileChar = '•'
	LauncherChar   = '◆'
	AimChar        = '∙'
	SparkChar      = '*'
	EmberChar      = '.'
)

// aimDots is how many guide dots are drawn between the launcher and the muzzle.
const aimDots = 3

// Render draws the current game state into dst.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.sim.Snapshot()

	g.renderTrack(dst, &snap)
	g.renderParticles(dst, &snap)
	g.renderSpheres(dst, &snap)
	g.renderLauncher(dst, &snap)
	g.renderHUD(dst, &snap)
	g.renderOverlay(dst, &snap)
}

// plot draws r at a world position if it lands inside the playfield.
func (g *Game) plot(dst *platformcore.Screen, p core.Point, r rune, c platformcore.Color) {
	x, y := g.view.ToCell(p.X, p.Y)
	if y < hudRows || y >= dst.Height() || x < 0 || x >= dst.Width() {
		return
	}
	dst.SetColored(x, y, r, c)
}

func (g *Game) renderTrack(dst *platformcore.Screen, snap *core.Snapshot) {
	for _, p := range snap.Track {
		g.plot(dst, p, TrackChar, platformcore.ColorGray)
	}
	if len(snap.Track) > 0 {
		g.plot(dst, snap.Goal, GoalChar, platformcore.ColorRed)
	}
}

func (g *Game) renderParticles(dst *platformcore.Screen, snap *core.Snapshot) {
	for _, p := range snap.Particles {
		r := EmberChar
		if p.Life > 0.5 {
			r = SparkChar
		}
		g.plot(dst, p.Pos, r, sphereColor(p.Color))
	}
}

func (g *Game) renderSpheres(dst *platformcore.Screen, snap *core.Snapshot) {
	for _, f := range g.fades {
		g.plot(dst, f.pos, FadeChar, sphereColor(f.color))
	}
	for _, sp := range snap.Spheres {
		r := SphereChar
		if sp.Status == core.StatusInserted {
			r = InsertedChar
		}
		g.plot(dst, sp.Pos, r, sphereColor(sp.Color))
	}
	for _, p := range snap.Projectiles {
		g.plot(dst, p.Pos, ProjectileChar, sphereColor(p.Color))
	}
}

func (g *Game) renderLauncher(dst *platformcore.Screen, snap *core.Snapshot) {
	if len(snap.Track) == 0 {
		return
	}
	dir := core.Dir(snap.Aim)
	step := g.cfg.Projectile.MuzzleOffset / aimDots
	for i := 1; i <= aimDots; i++ {
		g.plot(dst, snap.Launcher.Add(dir.Scale(step*float64(i))), AimChar, platformcore.ColorWhite)
	}
	g.plot(dst, snap.Launcher, LauncherChar, sphereColor(snap.Active))
}

func (g *Game) renderHUD(dst *platformcore.Screen, snap *core.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	var level string
	if g.mode == ModeEndless {
		level = fmt.Sprintf("Level %d  %d/%d", snap.Level, snap.Spawned, snap.Quota)
	} else {
		level = fmt.Sprintf("Level %d/%d  %d/%d", snap.Level, g.cfg.Level.CampaignLevels, snap.Spawned, snap.Quota)
	}
	dst.DrawTextCentered(0, level)

	// "Now ● Next ●" with the sphere glyphs tinted.
	x := dst.Width() - len([]rune("Now ● Next ●")) - 1
	dst.DrawText(x, 0, "Now")
	dst.SetColored(x+4, 0, SphereChar, sphereColor(snap.Active))
	dst.DrawText(x+6, 0, "Next")
	dst.SetColored(x+11, 0, SphereChar, sphereColor(snap.Next))
}

func (g *Game) renderOverlay(dst *platformcore.Screen, snap *core.Snapshot) {
	switch {
	case snap.Phase == core.PhaseOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case snap.Phase == core.PhaseWon:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", snap.Score)
		drawCenteredBox(dst, "YOU WIN!", subtitle)
	case g.paused && g.shrunk:
		drawCenteredBox(dst, "PAUSED", "Track shortened - enlarge or press P")
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case len(snap.Track) == 0:
		dst.DrawTextCentered(dst.Height()/2, "Waiting for layout...")
	}
}

// drawCenteredBox draws a centered message box over the playfield.
func drawCenteredBox(dst *platformcore.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	blank := strings.Repeat(" ", boxW)
	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawText(box.X, y, blank)
	}
	dst.DrawBox(box, platformcore.ColorWhite)

	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}

func sphereColor(c core.Color) platformcore.Color {
	return platformcore.ColorByName(c.String())
}
