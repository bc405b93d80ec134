// Package printservice implements the single, central "dumb" print
// server: it serializes nothing of its own (the client already holds
// mutual exclusion before calling it) and exists only to simulate a
// slow physical device.
package printservice

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

// Server implements pb.PrintingServiceServer. It holds no Lamport clock of
// its own: per original_source, the response simply echoes the request's
// timestamp back, so the caller's Observe of it only advances the caller's
// clock by one, as for any received message.
type Server struct {
	pb.UnimplementedPrintingServiceServer

	log      *zap.Logger
	minDelay time.Duration
	maxDelay time.Duration
	rng      *rand.Rand
}

// New builds a print server that sleeps a uniformly random duration in
// [minDelay, maxDelay] per job to simulate a physical printer. maxDelay
// must be >= minDelay.
func New(log *zap.Logger, minDelay, maxDelay time.Duration) *Server {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Server{
		log:      log,
		minDelay: minDelay,
		maxDelay: maxDelay,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SendToPrinter logs the job, sleeps a simulated print delay, and
// confirms. It never rejects a job: spec Non-goals put printer-side
// capacity limits and queuing out of scope.
func (s *Server) SendToPrinter(ctx context.Context, req *pb.PrintRequest) (*pb.PrintResponse, error) {
	s.log.Info("print job received",
		zap.Int64("client_id", req.ClientId),
		zap.Int64("request_number", req.RequestNumber),
		zap.Int64("lamport_timestamp", req.LamportTimestamp),
		zap.String("message", req.MessageContent))

	delay := s.minDelay
	if s.maxDelay > s.minDelay {
		delay += time.Duration(s.rng.Int63n(int64(s.maxDelay - s.minDelay)))
	}

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	confirmation := fmt.Sprintf("printed for client %d, req %d in %s",
		req.ClientId, req.RequestNumber, delay.Round(time.Millisecond))
	s.log.Info("print job done",
		zap.Int64("client_id", req.ClientId),
		zap.Int64("request_number", req.RequestNumber),
		zap.Duration("delay", delay))

	return &pb.PrintResponse{
		Success:             true,
		ConfirmationMessage: confirmation,
		LamportTimestamp:    req.LamportTimestamp,
	}, nil
}
