// lootsim resolves a configured drop table many times and reports how
// often each item comes up, so table authors can check their odds before
// shipping them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/lootbag"
	"github.com/udisondev/lootbag/internal/config"
)

const ConfigPath = "config/lootsim.yaml"

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfgPath := flag.String("config", ConfigPath, "path to simulator config")
	flag.Parse()

	cfg, err := config.LoadSimulator(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded", "table", cfg.Table, "trials", cfg.Trials, "workers", cfg.Workers, "seed", cfg.Seed)

	root, err := lootbag.LoadTableFile(cfg.Table)
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}
	slog.Info("table loaded", "items", root.AllCount())

	drops, err := buildDrops(cfg.Drops)
	if err != nil {
		return fmt.Errorf("building drops: %w", err)
	}

	counts, err := simulate(ctx, root, drops, cfg)
	if err != nil {
		return fmt.Errorf("simulating: %w", err)
	}

	report(counts, cfg.Trials)
	return nil
}

// buildDrops converts config entries into validated drops. A malformed
// entry aborts the run here, before any trial spends randomness.
func buildDrops(entries []config.DropEntry) ([]lootbag.Drop, error) {
	drops := make([]lootbag.Drop, 0, len(entries))
	for i, e := range entries {
		b := lootbag.NewDrop().
			Path(e.Path).
			Depth(e.Depth).
			Modify(e.Modify)
		if e.Luck != nil {
			b.Luck(*e.Luck)
		}
		if e.Stack != nil {
			b.Stack(e.Stack.Min, e.Stack.Max)
		}

		d, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("drop %d: %w", i, err)
		}
		drops = append(drops, d)
	}
	return drops, nil
}

// simulate splits trials across workers. Each worker owns its own seeded
// source (seed + worker index), so a run with workers=1 is a single
// reproducible stream and any worker count reproduces itself exactly.
func simulate(ctx context.Context, root *lootbag.Node, drops []lootbag.Drop, cfg config.Simulator) (map[string]int, error) {
	resolver := lootbag.NewResolver(nil)

	var mu sync.Mutex
	counts := make(map[string]int)

	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		trials := cfg.Trials / cfg.Workers
		if w < cfg.Trials%cfg.Workers {
			trials++
		}
		src := lootbag.NewSeeded(cfg.Seed + uint64(w))

		g.Go(func() error {
			local := make(map[string]int)
			for range trials {
				if err := ctx.Err(); err != nil {
					return err
				}
				items, err := resolver.LootWith(root, drops, src)
				if err != nil {
					return err
				}
				for _, it := range items {
					local[it.Name]++
				}
			}

			mu.Lock()
			for name, n := range local {
				counts[name] += n
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func report(counts map[string]int, trials int) {
	total := 0
	for _, n := range counts {
		total += n
	}
	slog.Info("simulation complete", "trials", trials, "items_dropped", total)

	for _, name := range slices.Sorted(maps.Keys(counts)) {
		n := counts[name]
		slog.Info("drop rate",
			"item", name,
			"count", n,
			"per_trial", fmt.Sprintf("%.4f", float64(n)/float64(trials)),
		)
	}
}
