// Package workload drives periodic critical-section attempts against a
// node, the way client_node.py's main loop drives printer requests: wait
// a random interval, then ask for the critical section once.
package workload

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/ArtilBr/distributed-computing-TP1/internal/node"
)

// Runner is the subset of *node.Node the generator needs. Accepting an
// interface instead of *node.Node keeps this package testable with a
// fake driver that never opens a socket.
type Runner interface {
	RequestAndRun(payload string) node.Result
}

// Generator issues one critical-section attempt per tick, where ticks
// arrive after a uniformly random wait in [minWait, maxWait].
type Generator struct {
	run      Runner
	log      *zap.Logger
	minWait  time.Duration
	maxWait  time.Duration
	rng      *rand.Rand
	attempts int
}

// New builds a generator. maxWait must be >= minWait.
func New(run Runner, log *zap.Logger, minWait, maxWait time.Duration) *Generator {
	if maxWait < minWait {
		maxWait = minWait
	}
	return &Generator{
		run:     run,
		log:     log,
		minWait: minWait,
		maxWait: maxWait,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run loops until ctx is cancelled, issuing one attempt per tick.
func (g *Generator) Run(ctx context.Context) {
	for {
		wait := g.nextWait()
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		g.attempts++
		payload := fmt.Sprintf("job #%d", g.attempts)
		res := g.run.RequestAndRun(payload)
		g.log.Info("attempt finished",
			zap.Int("attempt", g.attempts),
			zap.Bool("granted", res.Granted),
			zap.String("info", res.Info))
	}
}

func (g *Generator) nextWait() time.Duration {
	if g.maxWait == g.minWait {
		return g.minWait
	}
	return g.minWait + time.Duration(g.rng.Int63n(int64(g.maxWait-g.minWait)))
}
