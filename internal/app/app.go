//go:build ebiten

package app

import (
	"co2-twin/internal/core"
	"co2-twin/internal/render"
	"co2-twin/internal/twin"
	"co2-twin/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var windKeys = map[ebiten.Key]core.Wind{
	ebiten.KeyArrowUp:    core.North,
	ebiten.KeyArrowDown:  core.South,
	ebiten.KeyArrowRight: core.East,
	ebiten.KeyArrowLeft:  core.West,
	ebiten.KeyC:          core.Calm,
}

var slotKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}

// Game adapts a scenario to the ebiten.Game interface.
type Game struct {
	scenario *twin.Scenario
	painter  *render.FieldPainter
	overlay  *ui.Overlay
	hud      *ui.HUD

	scale    int
	hudWidth int

	reloads <-chan twin.Config
}

// New constructs a Game for the scenario.
func New(s *twin.Scenario, cfg *Config) *Game {
	n := s.Config().Dispersion.Size
	return &Game{
		scenario: s,
		painter:  render.NewFieldPainter(n, n),
		overlay:  ui.NewOverlay(s, cfg.Scale),
		hud:      ui.NewHUD(s, cfg.HUDWidth),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
	}
}

// Watch makes the game apply configurations received on ch between frames.
func (g *Game) Watch(ch <-chan twin.Config) { g.reloads = ch }

// Update handles input. The field is only recomputed when the scenario
// changes.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.applyReload()
	for key, wind := range windKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.scenario.SetWind(wind)
		}
	}
	for i, key := range slotKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if kind, ok := KindForSlot(g.scenario, i+1); ok {
			_ = g.scenario.Select(kind)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.scenario.Undo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scenario.Reset()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if x, y, ok := CellAt(mx, my, g.scale, g.size()); ok {
			// Rejections are logged by the scenario.
			_ = g.scenario.Place(x, y)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.mapWidth())
	return nil
}

// Draw renders the concentration map, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scenario.Evaluate().Field, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.mapWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.mapWidth() + g.hudWidth, g.size() * g.scale
}

func (g *Game) applyReload() {
	if g.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-g.reloads:
		if !ok {
			g.reloads = nil
			return
		}
		prev := g.size()
		g.scenario.Reconfigure(cfg)
		g.hud.Reload()
		if n := g.size(); n != prev {
			g.painter = render.NewFieldPainter(n, n)
			ebiten.SetWindowSize(g.mapWidth()+g.hudWidth, n*g.scale)
		}
	default:
	}
}

func (g *Game) size() int { return g.scenario.Config().Dispersion.Size }

func (g *Game) mapWidth() int { return g.size() * g.scale }
