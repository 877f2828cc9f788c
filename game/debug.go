package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugState holds debug overlay flags for one Game
type DebugState struct {
	ShowHUD bool // Show hazard counts, timers and TPS
}

// drawHUD prints the session state in the top-left corner
func (d *DebugState) drawHUD(screen *ebiten.Image, s *Session) {
	if !d.ShowHUD {
		return
	}

	stats := s.Stats()
	dying := 0
	for _, h := range s.Hazards() {
		if h.Dying() {
			dying++
		}
	}
	player := s.Player()

	hud := fmt.Sprintf("TPS: %0.1f | FPS: %0.1f\nHazards: %d (dying %d) | next spawn %.2fs\nSliced: %d | Frames: %d | Time: %.1fs\nPlayer: (%.0f, %.0f) v=(%.1f, %.1f) grounded=%t",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		len(s.Hazards()), dying, s.Spawner().TimeUntilNext(),
		stats.Sliced, stats.Frames, stats.Elapsed,
		player.Position.X, player.Position.Y, player.Velocity.X, player.Velocity.Y, player.Grounded(float64(screen.Bounds().Dy())))
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)
}
