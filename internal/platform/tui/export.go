package tui

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/spiral/internal/core"
	sim "github.com/vovakirdan/spiral/internal/games/spiral/core"
)

// PNG layout constants
const (
	pngHUDHeight  = 28
	pngFontSize   = 16.0
	pngBackground = "#14141E"
	pngTrack      = "#2E2E40"
	pngTrackLine  = "#4B4B63"
	pngGoal       = "#FF4B5C"
	pngText       = "#F5F6FA"
)

var (
	fontOnce sync.Once
	fontFace font.Face
	fontErr  error
)

// hudFace parses the embedded Go Mono font once.
func hudFace() (font.Face, error) {
	fontOnce.Do(func() {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			fontErr = fmt.Errorf("failed to parse font: %w", err)
			return
		}
		fontFace = truetype.NewFace(ttf, &truetype.Options{
			Size:    pngFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return fontFace, fontErr
}

// RenderSnapshot draws a snapshot at one pixel per world unit, with a HUD
// strip above the playfield.
func RenderSnapshot(snap *sim.Snapshot) (*gg.Context, error) {
	w := int(math.Ceil(snap.Width))
	h := int(math.Ceil(snap.Height))
	if w <= 0 || h <= 0 || len(snap.Track) == 0 {
		return nil, errors.New("export: snapshot has no track")
	}

	face, err := hudFace()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h+pngHUDHeight)
	dc.SetHexColor(pngBackground)
	dc.Clear()
	dc.SetFontFace(face)

	dc.Push()
	dc.Translate(0, pngHUDHeight)
	drawTrack(dc, snap)
	drawBalls(dc, snap)
	drawLauncher(dc, snap)
	dc.Pop()

	drawHUD(dc, snap)
	return dc, nil
}

func drawTrack(dc *gg.Context, snap *sim.Snapshot) {
	trace := func() {
		dc.MoveTo(snap.Track[0].X, snap.Track[0].Y)
		for _, p := range snap.Track[1:] {
			dc.LineTo(p.X, p.Y)
		}
	}

	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.SetHexColor(pngTrack)
	dc.SetLineWidth(snap.Radius * 2)
	trace()
	dc.Stroke()

	dc.SetHexColor(pngTrackLine)
	dc.SetLineWidth(1)
	trace()
	dc.Stroke()

	dc.SetHexColor(pngGoal)
	dc.SetLineWidth(3)
	dc.DrawCircle(snap.Goal.X, snap.Goal.Y, snap.Radius)
	dc.Stroke()
}

func drawBalls(dc *gg.Context, snap *sim.Snapshot) {
	for _, p := range snap.Particles {
		dc.SetHexColor(p.Color.Hex())
		dc.DrawCircle(p.Pos.X, p.Pos.Y, 1+3*p.Life)
		dc.Fill()
	}

	for _, sp := range snap.Spheres {
		dc.SetHexColor(sp.Color.Hex())
		dc.DrawCircle(sp.Pos.X, sp.Pos.Y, snap.Radius)
		dc.Fill()
		dc.SetRGBA(1, 1, 1, 0.35)
		dc.DrawCircle(sp.Pos.X-snap.Radius/3, sp.Pos.Y-snap.Radius/3, snap.Radius/4)
		dc.Fill()
	}

	for _, p := range snap.Projectiles {
		dc.SetHexColor(p.Color.Hex())
		dc.DrawCircle(p.Pos.X, p.Pos.Y, snap.Radius)
		dc.Fill()
	}

	// Spheres inserted this tick get a ring so the hit is visible in stills.
	dc.SetHexColor(pngText)
	dc.SetLineWidth(3)
	for _, sp := range snap.Spheres {
		if sp.Status != sim.StatusInserted {
			continue
		}
		dc.DrawCircle(sp.Pos.X, sp.Pos.Y, snap.Radius+2)
		dc.Stroke()
	}
}

func drawLauncher(dc *gg.Context, snap *sim.Snapshot) {
	c := snap.Launcher
	tip := c.Add(sim.Dir(snap.Aim).Scale(snap.Radius * 2.5))

	dc.SetHexColor(pngText)
	dc.SetLineWidth(4)
	dc.DrawLine(c.X, c.Y, tip.X, tip.Y)
	dc.Stroke()

	dc.SetHexColor(snap.Active.Hex())
	dc.DrawCircle(c.X, c.Y, snap.Radius)
	dc.Fill()

	dc.SetHexColor(snap.Next.Hex())
	dc.DrawCircle(c.X, c.Y, snap.Radius/3)
	dc.Fill()
}

func drawHUD(dc *gg.Context, snap *sim.Snapshot) {
	dc.SetHexColor(pngText)
	hud := fmt.Sprintf("Score %d   Level %d   %d/%d   Speed %.2f", snap.Score, snap.Level, snap.Spawned, snap.Quota, snap.Speed)
	dc.DrawStringAnchored(hud, 8, pngHUDHeight/2, 0, 0.35)

	var banner string
	switch snap.Phase {
	case sim.PhaseOver:
		banner = "GAME OVER"
	case sim.PhaseWon:
		banner = "YOU WIN!"
	default:
		return
	}
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, h/2-30, w, 60)
	dc.Fill()
	dc.SetHexColor(pngText)
	dc.DrawStringAnchored(banner, w/2, h/2, 0.5, 0.35)
}

// ExportPNG renders snap and writes it to path.
func ExportPNG(path string, snap *sim.Snapshot) error {
	dc, err := RenderSnapshot(snap)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// ScreenshotDir returns ~/.spiral/screenshots.
func ScreenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".spiral", "screenshots"), nil
}

// SaveScreenshot writes the text screen and, when snap is not nil, a PNG of
// the same moment into dir. It returns the base path without extension.
func SaveScreenshot(dir, gameID string, screen *core.Screen, snap *sim.Snapshot, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", gameID, at.Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	if snap != nil {
		if err := ExportPNG(base+".png", snap); err != nil {
			return base, err
		}
	}
	return base, nil
}
