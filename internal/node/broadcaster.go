package node

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ArtilBr/distributed-computing-TP1/internal/lamport"
	"github.com/ArtilBr/distributed-computing-TP1/internal/metrics"
	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

// broadcaster fans RequestAccess and ReleaseAccess out to every configured
// peer in parallel. A crashed or unreachable peer is tolerated: its
// RequestAccess failure is logged and the peer is still removed from
// outstanding_grants, trading safety for liveness exactly as spec §4.4
// prescribes (flagged again in DESIGN.md).
type broadcaster struct {
	peers          []*peerClient
	clock          *lamport.Clock
	log            *zap.Logger
	metric         *metrics.Metrics
	ackTimeout     time.Duration
	releaseTimeout time.Duration
}

// broadcastRequest sends req to every peer with a per-call deadline of
// ackTimeout and updates st.outstanding as replies land. It returns once
// every peer has either replied or its RPC has terminated — the
// grant-drain condition from spec §4.4/§4.5.
func (b *broadcaster) broadcastRequest(st *state, req *pb.AccessRequest) {
	if len(b.peers) == 0 {
		return
	}

	var g errgroup.Group
	for _, p := range b.peers {
		p := p
		g.Go(func() error {
			b.metric.RequestsSent.Inc()
			ctx, cancel := context.WithTimeout(context.Background(), b.ackTimeout)
			defer cancel()

			resp, err := p.client.RequestAccess(ctx, req)
			if err != nil {
				b.metric.RequestsFailed.Inc()
				b.log.Warn("RequestAccess to peer failed, treating as granted",
					zap.Int64("peer", p.id), zap.Error(err))
				st.markGranted(p.id)
				return nil
			}

			b.clock.Observe(resp.LamportTimestamp)
			st.markGranted(p.id)
			return nil
		})
	}
	// Every task above always returns nil: failures are swallowed inline
	// so that Wait() only ever reports the (impossible) case of a
	// programmer error, never a peer's transport fault.
	_ = g.Wait()
}

// broadcastRelease sends rel to every peer with a per-call deadline of
// releaseTimeout. Individual failures are logged and ignored; release
// delivery is advisory only (spec §9) and must never be load-bearing.
func (b *broadcaster) broadcastRelease(rel *pb.AccessRelease) {
	if len(b.peers) == 0 {
		return
	}

	var g errgroup.Group
	for _, p := range b.peers {
		p := p
		g.Go(func() error {
			b.metric.ReleasesSent.Inc()
			ctx, cancel := context.WithTimeout(context.Background(), b.releaseTimeout)
			defer cancel()

			if _, err := p.client.ReleaseAccess(ctx, rel); err != nil {
				b.log.Warn("ReleaseAccess to peer failed, ignoring",
					zap.Int64("peer", p.id), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
}
