package root

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/mfehric/gamify/internal/catalog"
	"github.com/mfehric/gamify/internal/config"
	"github.com/mfehric/gamify/internal/engine"
	"github.com/mfehric/gamify/internal/storage"
	"github.com/mfehric/gamify/internal/ui"
)

// openService wires config, catalog, sqlite store, and the engine
// service, and runs the once-per-session day reconciliation. The
// rollover result is rendered here so every command surfaces missed
// penalties the same way.
func openService(ctx context.Context, out printer) (*engine.Service, func(), error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, nil, err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	clock := engine.SystemClock{}
	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	svc := engine.NewService(storage.NewStore(db), cat, clock, rng, cfg.PlayerName)
	rollover, err := svc.Open(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	renderRollover(out, rollover)
	return svc, cleanup, nil
}

type printer interface {
	Write(p []byte) (int, error)
}

func renderRollover(out printer, res *engine.RolloverResult) {
	if res == nil || !res.Ran {
		return
	}
	if len(res.MissedQuests) > 0 {
		fmt.Fprintf(out, "%s Missed critical quests yesterday: %v (-%d HP)\n",
			ui.Warn.Render(ui.IconWarn), res.MissedQuests, res.HPLost)
	}
	if res.StreakBroken {
		fmt.Fprintln(out, ui.Bad.Render(ui.IconFire+" Streak broken."))
	}
}
