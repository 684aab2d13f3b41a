// Profiling:
// go build ./profile/entities
// ./entities -config profile.toml
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/edwinsyarief/kura"
	"github.com/edwinsyarief/kura/internal/profilecfg"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	path := flag.String("config", "", "profile config (toml or yaml)")
	flag.Parse()

	cfg, err := profilecfg.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := profilecfg.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("profiling entity churn",
		zap.Int("rounds", cfg.Run.Rounds),
		zap.Int("iters", cfg.Run.Iters),
		zap.Int("entities", cfg.Run.Entities),
		zap.String("mode", cfg.Profile.Mode))
	p := profilecfg.Start(cfg.Profile)
	if err := run(logger, cfg.Run); err != nil {
		logger.Error("run failed", zap.Error(err))
	}
	p.Stop()
}

func run(logger *zap.Logger, cfg profilecfg.RunConfig) error {
	retired := 0
	for range cfg.Rounds {
		w := kura.NewWorld(kura.WithLogger(logger), kura.WithEntityCapacity(cfg.Entities))
		kura.Subscribe(w.Events(), func(kura.SlotRetired) { retired++ })

		ids := make([]kura.EntityID, 0, cfg.Entities)
		for range cfg.Iters {
			ids = ids[:0]
			for i := range cfg.Entities {
				id, err := kura.AddEntity2(w, comp1{V: int64(i)}, comp2{V: 1, W: 1})
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			c1, err := kura.BorrowViewMut[comp1](w)
			if err != nil {
				return err
			}
			c2, err := kura.BorrowView[comp2](w)
			if err != nil {
				c1.Release()
				return err
			}
			for _, out := range kura.Iter(kura.Join2(c1, c2)) {
				a, b := out.Unpack()
				p := a.Ptr()
				p.V += b.V
				p.W += b.W
			}
			c1.Release()
			c2.Release()

			for _, id := range ids {
				if _, err := w.Delete(id); err != nil {
					return err
				}
			}
		}
	}
	logger.Info("done", zap.Int("retired_slots", retired))
	return nil
}
