package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/leonelquinteros/gotext"

	"mazecaster/pkg/engine/terminal"
	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/config"
	"mazecaster/pkg/game/i18n"
	"mazecaster/pkg/game/menu"
	"mazecaster/pkg/game/renderer"
	"mazecaster/pkg/game/renderer/ebiten"
	"mazecaster/pkg/game/renderer/tui"
	"mazecaster/pkg/game/state"
)

// buildGame creates the session: a solid grid, optionally carved from the
// configured seed.
func buildGame(cfg config.Config) (*state.Game, error) {
	grid := world.NewGrid(cfg.GridHeight, cfg.GridWidth)
	g := state.NewGame(grid, cfg.CellSize)
	g.Start = cfg.StartPosition()

	if cfg.Seed != config.NoSeed {
		if err := g.Generate(context.Background(), cfg.Seed); err != nil {
			return nil, err
		}
		g.SeedText = strconv.FormatInt(cfg.Seed, 10)
		log.Printf("Generated %dx%d maze from seed %d", cfg.GridWidth, cfg.GridHeight, cfg.Seed)
	}
	return g, nil
}

func newRenderer(cfg config.Config) renderer.Renderer {
	settings := renderer.Settings{
		Raycast: cfg.RaycastConfig(),
		Move:    cfg.MoveConfig(),
		TPS:     cfg.TPS,
	}
	if cfg.Renderer == config.RendererTUI {
		return tui.New(settings)
	}
	return ebiten.New(settings, cfg.GridHeight, cfg.GridWidth)
}

// snapshot prints one first-person frame from the spawn point to stdout
func snapshot(cfg config.Config, g *state.Game) error {
	if err := g.EnterPlay(); err != nil {
		return err
	}
	cols, rows := terminal.GetSize()
	return renderer.WriteSnapshot(os.Stdout, g, cfg.RaycastConfig(), cols, rows, terminal.IsTerminal(os.Stdout))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config: %v", err)
	}
	if err := i18n.Init(cfg.Language); err != nil {
		log.Fatalf("Translations: %v", err)
	}

	if cfg.Keys {
		if err := menu.WriteBindings(os.Stdout, terminal.IsTerminal(os.Stdout)); err != nil {
			log.Fatalf("Keys: %v", err)
		}
		return
	}

	g, err := buildGame(cfg)
	if err != nil {
		log.Fatalf("Startup: %v", err)
	}

	if cfg.Snapshot {
		if err := snapshot(cfg, g); err != nil {
			log.Fatalf("Snapshot: %v", err)
		}
		return
	}

	r := newRenderer(cfg)
	if err := r.Init(); err != nil {
		log.Fatalf("Renderer: %v", err)
	}
	rows, cols := r.GetViewportSize()
	log.Printf("Viewport %dx%d (%s)", rows, cols, cfg.Renderer)
	if err := r.Run(g); err != nil {
		log.Fatalf("Renderer: %v", err)
	}

	renderer.StyleTitle.Println(gotext.Get("GOODBYE"))
}
