package game

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to ebiten's loop. ebiten calls Update once per tick
// and Draw when the frame is presented; returning from Update is the loop's
// only suspension point.
type Game struct {
	config       Config
	orchestrator *FrameOrchestrator
	drawList     *DrawList
	debug        DebugState
	logger       *slog.Logger

	// Live playfield size, refreshed by Layout
	width, height float64
}

// NewGame creates a new game instance
func NewGame(config Config, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		config:   config,
		drawList: NewDrawList(),
		logger:   logger,
		width:    float64(config.ScreenWidth),
		height:   float64(config.ScreenHeight),
	}

	session := NewSession(config, NewRand(config.Seed), g, WithLogger(logger))
	g.orchestrator = NewFrameOrchestrator(
		session,
		NewFrameClock(config.MaxFrameTime),
		NewKeyboardInput(),
		g,
		g.drawList,
	)
	return g
}

// Update steps the simulation. The fatal collision error is returned as is
// so ebiten.RunGame stops and hands it back to the caller.
func (g *Game) Update() error {
	// F1 toggles the debug HUD
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowHUD = !g.debug.ShowHUD
	}

	if err := g.orchestrator.Tick(); err != nil {
		g.logger.Info("session ended", "stats", g.orchestrator.Session().Stats())
		return err
	}
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawList.Render(screen)
	g.debug.drawHUD(screen, g.orchestrator.Session())
}

// Layout tracks the window size so the playfield follows resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width = float64(outsideWidth)
		g.height = float64(outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Width returns the current playfield width
func (g *Game) Width() float64 {
	return g.width
}

// Height returns the current playfield height
func (g *Game) Height() float64 {
	return g.height
}

// Session returns the running session
func (g *Game) Session() *Session {
	return g.orchestrator.Session()
}
