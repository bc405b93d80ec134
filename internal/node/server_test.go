package node

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ArtilBr/distributed-computing-TP1/internal/lamport"
	"github.com/ArtilBr/distributed-computing-TP1/internal/metrics"
	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

func newTestServer(id int64) *exclusionServer {
	return &exclusionServer{
		st:     newState(id),
		clock:  lamport.New(),
		log:    zap.NewNop(),
		metric: metrics.New(id),
	}
}

func TestRequestAccessGrantsImmediatelyWhenReleased(t *testing.T) {
	s := newTestServer(1)

	resp, err := s.RequestAccess(context.Background(), &pb.AccessRequest{
		ClientId: 2, LamportTimestamp: 5, RequestNumber: 1,
	})
	require.NoError(t, err)
	require.True(t, resp.AccessGranted)
}

// TestRequestAccessDefersUntilHeldReleased proves the deferral path: a
// lower-priority inbound request must block until our own HELD attempt
// releases.
func TestRequestAccessDefersUntilHeldReleased(t *testing.T) {
	s := newTestServer(1)

	key, _ := s.st.enterWanted(s.clock, nil)
	s.st.enterHeld()

	done := make(chan *pb.AccessResponse, 1)
	go func() {
		resp, err := s.RequestAccess(context.Background(), &pb.AccessRequest{
			ClientId: 2, LamportTimestamp: key.ts + 1, RequestNumber: 1,
		})
		require.NoError(t, err)
		done <- resp
	}()

	select {
	case <-done:
		t.Fatal("RequestAccess returned before the holder released")
	case <-time.After(50 * time.Millisecond):
	}

	s.st.enterReleased()

	select {
	case resp := <-done:
		require.True(t, resp.AccessGranted)
	case <-time.After(time.Second):
		t.Fatal("RequestAccess never unblocked after release")
	}
}

// TestRequestAccessReturnsOnContextCancellation proves that a caller
// giving up does not leave the handler goroutine blocked forever.
func TestRequestAccessReturnsOnContextCancellation(t *testing.T) {
	s := newTestServer(1)
	key, _ := s.st.enterWanted(s.clock, nil)
	s.st.enterHeld()
	defer s.st.enterReleased()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := s.RequestAccess(ctx, &pb.AccessRequest{
		ClientId: 2, LamportTimestamp: key.ts + 1, RequestNumber: 1,
	})
	require.Error(t, err)
}

func TestReleaseAccessOnlyObservesClock(t *testing.T) {
	s := newTestServer(1)
	_, err := s.ReleaseAccess(context.Background(), &pb.AccessRelease{
		ClientId: 2, LamportTimestamp: 100, RequestNumber: 1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(101), s.clock.Read())
}
