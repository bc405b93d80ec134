// Package node implements a single peer in the Ricart-Agrawala mutual
// exclusion cluster: the RA state machine, the peer-facing gRPC server that
// applies the deferral policy, the request broadcaster, and the
// critical-section driver that orchestrates a single node's attempts.
package node

import (
	"fmt"
	"sync"

	"github.com/ArtilBr/distributed-computing-TP1/internal/lamport"
)

// State is one of {Released, Wanted, Held}. No transition skips Wanted.
type State int

const (
	Released State = iota
	Wanted
	Held
)

func (s State) String() string {
	switch s {
	case Released:
		return "RELEASED"
	case Wanted:
		return "WANTED"
	case Held:
		return "HELD"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// requestKey is the priority tuple (ts, node_id). Total order: lexicographic
// ascending, smaller tuple wins. request_number is not part of the key: it
// is carried alongside for log correlation only, never for ordering.
type requestKey struct {
	ts     int64
	nodeID int64
}

// less reports whether k has strictly higher priority than other.
func (k requestKey) less(other requestKey) bool {
	if k.ts != other.ts {
		return k.ts < other.ts
	}
	return k.nodeID < other.nodeID
}

// InvariantViolation is fatal: the caller should abort the process. It
// signals that an assumption the RA state machine depends on (unique node
// ids, my_request non-nil while not Released) has been broken.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Reason
}

// state aggregates the mutable NodeState described by the protocol: the RA
// state, the current request tuple, and the set of peers still owed a
// grant for the in-flight attempt. A single mutex protects all three, and
// the attached condition variable is broadcast on every transition out of
// Held and out of Wanted (aborted or completed) so that deferred inbound
// handlers can re-check their predicate.
type state struct {
	mu   sync.Mutex
	cond *sync.Cond

	nodeID int64

	ra              State
	requestNumber   int64
	myRequest       *requestKey
	myRequestNumber int64
	outstanding     map[int64]struct{}
}

func newState(nodeID int64) *state {
	s := &state{nodeID: nodeID, ra: Released}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// shouldDefer reports whether an inbound RequestAccess carrying theirKey
// must be held open: true while Held, or while Wanted with a
// strictly-higher-priority outstanding request of our own.
//
// Must be called with mu held.
func (s *state) shouldDefer(theirKey requestKey) bool {
	switch s.ra {
	case Held:
		return true
	case Wanted:
		if s.myRequest == nil {
			panic(&InvariantViolation{Reason: "state Wanted with nil myRequest"})
		}
		return s.myRequest.less(theirKey)
	default: // Released
		return false
	}
}

// enterWanted performs the RELEASED -> WANTED transition: bump
// request_number, stamp a fresh request tuple from clock, and reset
// outstanding to the full peer set. Returns the stamped tuple and the
// request_number assigned to it, for use by the broadcaster and driver.
func (s *state) enterWanted(clock *lamport.Clock, peerIDs []int64) (requestKey, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ra != Released {
		panic(&InvariantViolation{Reason: "enterWanted called while not RELEASED"})
	}

	s.requestNumber++
	ts := clock.Tick()
	key := requestKey{ts: ts, nodeID: s.nodeID}
	s.myRequest = &key
	s.myRequestNumber = s.requestNumber
	s.ra = Wanted

	s.outstanding = make(map[int64]struct{}, len(peerIDs))
	for _, id := range peerIDs {
		s.outstanding[id] = struct{}{}
	}

	return key, s.requestNumber
}

// markGranted removes peerID from the outstanding set. Returns true if the
// set just drained to empty.
func (s *state) markGranted(peerID int64) (drained bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.outstanding, peerID)
	return len(s.outstanding) == 0
}

// enterHeld performs the WANTED -> HELD transition.
func (s *state) enterHeld() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ra != Wanted {
		panic(&InvariantViolation{Reason: "enterHeld called while not WANTED"})
	}
	s.ra = Held
	s.cond.Broadcast()
}

// enterReleased performs the HELD -> RELEASED (or the aborted WANTED ->
// RELEASED) transition: clear my_request and wake every inbound handler
// blocked in deferral so it can re-check its predicate.
func (s *state) enterReleased() (requestKey, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.myRequest == nil {
		panic(&InvariantViolation{Reason: "enterReleased called with nil myRequest"})
	}
	key := *s.myRequest
	reqNum := s.myRequestNumber
	s.myRequest = nil
	s.outstanding = nil
	s.ra = Released
	s.cond.Broadcast()
	return key, reqNum
}

func (s *state) current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ra
}
