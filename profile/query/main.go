// Profiling:
// go build ./profile/query
// ./query -config profile.yaml
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	path := flag.String("config", "", "profile config (toml or yaml)")
	fast := flag.Bool("fast", false, "iterate with FastIter")
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

	p := profilecfg.Start(cfg.Profile)
	if err := run(logger, cfg.Run, *fast); err != nil {
		logger.Error("run failed", zap.Error(err))
	}
	p.Stop()
}

type views struct {
	v1 *kura.ViewMut[comp1]
	v2 *kura.View[comp2]
	v3 *kura.View[comp3]
	v4 *kura.View[comp4]
	v5 *kura.View[comp5]
	v6 *kura.View[comp6]
}

func borrow(w *kura.World) (*views, error) {
	var (
		vs  views
		err error
	)
	if vs.v1, err = kura.BorrowViewMut[comp1](w); err != nil {
		return nil, err
	}
	if vs.v2, err = kura.BorrowView[comp2](w); err != nil {
		return nil, err
	}
	if vs.v3, err = kura.BorrowView[comp3](w); err != nil {
		return nil, err
	}
	if vs.v4, err = kura.BorrowView[comp4](w); err != nil {
		return nil, err
	}
	if vs.v5, err = kura.BorrowView[comp5](w); err != nil {
		return nil, err
	}
	if vs.v6, err = kura.BorrowView[comp6](w); err != nil {
		return nil, err
	}
	return &vs, nil
}

func (vs *views) release() {
	vs.v1.Release()
	vs.v2.Release()
	vs.v3.Release()
	vs.v4.Release()
	vs.v5.Release()
	vs.v6.Release()
}

func run(logger *zap.Logger, cfg profilecfg.RunConfig, fast bool) error {
	for round := range cfg.Rounds {
		w := kura.NewWorld(kura.WithLogger(logger), kura.WithEntityCapacity(cfg.Entities))
		for range cfg.Entities {
			if _, err := kura.AddEntity6(w, comp1{}, comp2{V: 1, W: 2}, comp3{}, comp4{}, comp5{}, comp6{}); err != nil {
				return err
			}
		}

		vs, err := borrow(w)
		if err != nil {
			return err
		}
		join := kura.Join6(vs.v1, vs.v2, vs.v3, vs.v4, vs.v5, vs.v6)
		for range cfg.Iters {
			if fast {
				for _, out := range kura.FastIter(join) {
					out.V1.V += out.V2.V
					out.V1.W += out.V2.W
				}
				continue
			}
			for _, out := range kura.Iter(join) {
				p := out.V1.Ptr()
				p.V += out.V2.V
				p.W += out.V2.W
			}
			vs.v1.ClearModified()
		}
		vs.release()
		logger.Debug("round done", zap.Int("round", round))
	}
	return nil
}
