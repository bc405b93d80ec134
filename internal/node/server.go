package node

import (
	"context"

	"go.uber.org/zap"

	"github.com/ArtilBr/distributed-computing-TP1/internal/lamport"
	"github.com/ArtilBr/distributed-computing-TP1/internal/metrics"
	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

// exclusionServer implements pb.MutualExclusionServiceServer: the
// peer-facing side of the protocol. It is deliberately thin — all of the
// interesting state lives in *state — so that it can be embedded directly
// into Node without an extra indirection layer.
type exclusionServer struct {
	pb.UnimplementedMutualExclusionServiceServer

	st     *state
	clock  *lamport.Clock
	log    *zap.Logger
	metric *metrics.Metrics
}

// RequestAccess is the deferral policy described in spec §4.3: the grant is
// always eventually true, carried as a delayed unary reply. The handler
// blocks until shouldDefer(theirKey) is false, re-checking on every state
// transition and on the caller's own context cancellation.
func (s *exclusionServer) RequestAccess(ctx context.Context, req *pb.AccessRequest) (*pb.AccessResponse, error) {
	s.clock.Observe(req.LamportTimestamp)
	theirKey := requestKey{ts: req.LamportTimestamp, nodeID: req.ClientId}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	// Wake the wait below if the requester gives up on us first; the
	// cond var is otherwise only broadcast on our own transitions.
	stop := context.AfterFunc(ctx, func() {
		s.st.mu.Lock()
		s.st.cond.Broadcast()
		s.st.mu.Unlock()
	})
	defer stop()

	deferred := false
	for s.st.shouldDefer(theirKey) {
		if !deferred {
			deferred = true
			s.metric.DeferralsStarted.Inc()
			s.log.Debug("deferring RequestAccess reply",
				zap.Int64("from", req.ClientId),
				zap.Int64("their_ts", req.LamportTimestamp),
				zap.String("my_state", s.st.ra.String()))
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.st.cond.Wait()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if deferred {
		s.metric.DeferralsResolved.Inc()
	}
	s.metric.GrantsIssued.Inc()

	ts := s.clock.Tick()
	s.log.Debug("granting RequestAccess",
		zap.Int64("to", req.ClientId),
		zap.Int64("their_ts", req.LamportTimestamp),
		zap.Int64("reply_ts", ts))

	return &pb.AccessResponse{AccessGranted: true, LamportTimestamp: ts}, nil
}

// ReleaseAccess is purely informational: it only advances the receiver's
// Lamport clock. Per spec §9, its delivery must never be load-bearing for
// correctness — the sender's own HELD -> RELEASED transition is what
// unblocks its deferred inbound handlers, not this call.
func (s *exclusionServer) ReleaseAccess(ctx context.Context, rel *pb.AccessRelease) (*pb.Empty, error) {
	s.clock.Observe(rel.LamportTimestamp)
	s.log.Debug("received release",
		zap.Int64("from", rel.ClientId),
		zap.Int64("their_ts", rel.LamportTimestamp))
	return &pb.Empty{}, nil
}
