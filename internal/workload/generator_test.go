package workload

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ArtilBr/distributed-computing-TP1/internal/node"
)

type fakeRunner struct {
	calls atomic.Int64
}

func (f *fakeRunner) RequestAndRun(payload string) node.Result {
	f.calls.Add(1)
	return node.Result{Granted: true, Info: payload}
}

func TestGeneratorRunsUntilCancelled(t *testing.T) {
	runner := &fakeRunner{}
	gen := New(runner, zap.NewNop(), time.Millisecond, 2*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	gen.Run(ctx)

	require.Greater(t, runner.calls.Load(), int64(0))
}

func TestNextWaitIsWithinBounds(t *testing.T) {
	gen := New(&fakeRunner{}, zap.NewNop(), 10*time.Millisecond, 20*time.Millisecond)
	for i := 0; i < 100; i++ {
		w := gen.nextWait()
		require.GreaterOrEqual(t, w, 10*time.Millisecond)
		require.Less(t, w, 20*time.Millisecond)
	}
}

func TestNextWaitConstantWhenEqualBounds(t *testing.T) {
	gen := New(&fakeRunner{}, zap.NewNop(), 5*time.Millisecond, 5*time.Millisecond)
	require.Equal(t, 5*time.Millisecond, gen.nextWait())
}
