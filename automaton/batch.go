package automaton

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/motifguard/machine"
)

// Request is one independent build.
type Request struct {
	Motif   string
	Options []Option
}

// Result is the outcome of one request.
type Result struct {
	Machine *machine.Machine
	Stats   Stats
}

// BuildAll runs the requests concurrently, at most limit at a time
// (limit <= 0 means unbounded). Results are in request order. The first
// failure cancels builds that have not started yet and is returned,
// wrapped with the request index and motif.
func BuildAll(ctx context.Context, reqs []Request, limit int) ([]*machine.Machine, error) {
	res, err := BuildAllWithStats(ctx, reqs, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*machine.Machine, len(res))
	for i, r := range res {
		out[i] = r.Machine
	}
	return out, nil
}

// BuildAllWithStats is BuildAll that keeps each build's Stats.
func BuildAllWithStats(ctx context.Context, reqs []Request, limit int) ([]Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	out := make([]Result, len(reqs))
	for i, r := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, st, err := BuildWithStats(r.Motif, r.Options...)
			if err != nil {
				return fmt.Errorf("request %d (%q): %w", i, r.Motif, err)
			}
			out[i] = Result{Machine: m, Stats: st}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
