package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArtilBr/distributed-computing-TP1/internal/lamport"
)

func TestRequestKeyOrdering(t *testing.T) {
	lower := requestKey{ts: 1, nodeID: 9}
	higher := requestKey{ts: 2, nodeID: 1}
	assert.True(t, lower.less(higher))
	assert.False(t, higher.less(lower))

	tie1 := requestKey{ts: 5, nodeID: 1}
	tie2 := requestKey{ts: 5, nodeID: 2}
	assert.True(t, tie1.less(tie2))
	assert.False(t, tie2.less(tie1))
}

func TestEnterWantedHeldReleasedCycle(t *testing.T) {
	s := newState(1)
	assert.Equal(t, Released, s.current())

	clock := lamport.New()
	key, reqNum := s.enterWanted(clock, []int64{2, 3})
	assert.Equal(t, Wanted, s.current())
	assert.Equal(t, int64(1), reqNum)
	assert.Equal(t, int64(1), key.nodeID)

	s.enterHeld()
	assert.Equal(t, Held, s.current())

	gotKey, gotReqNum := s.enterReleased()
	assert.Equal(t, Released, s.current())
	assert.Equal(t, key, gotKey)
	assert.Equal(t, reqNum, gotReqNum)
}

func TestEnterWantedPanicsUnlessReleased(t *testing.T) {
	s := newState(1)
	clock := lamport.New()
	s.enterWanted(clock, nil)

	assert.PanicsWithError(t, "invariant violation: enterWanted called while not RELEASED", func() {
		s.enterWanted(clock, nil)
	})
}

func TestEnterHeldPanicsUnlessWanted(t *testing.T) {
	s := newState(1)
	assert.Panics(t, func() { s.enterHeld() })
}

func TestEnterReleasedPanicsWithNoRequest(t *testing.T) {
	s := newState(1)
	assert.Panics(t, func() { s.enterReleased() })
}

func TestShouldDeferReleased(t *testing.T) {
	s := newState(1)
	assert.False(t, s.shouldDefer(requestKey{ts: 1, nodeID: 2}))
}

func TestShouldDeferHeldAlwaysTrue(t *testing.T) {
	s := newState(1)
	clock := lamport.New()
	s.enterWanted(clock, nil)
	s.enterHeld()
	assert.True(t, s.shouldDefer(requestKey{ts: 1000, nodeID: 2}))
}

func TestShouldDeferWantedComparesPriority(t *testing.T) {
	s := newState(5)
	clock := lamport.New()
	myKey, _ := s.enterWanted(clock, nil)
	require.Equal(t, int64(1), myKey.ts)

	// A requester with a strictly earlier timestamp outranks us: we grant
	// it immediately instead of deferring.
	higherPriority := requestKey{ts: myKey.ts - 1, nodeID: 99}
	assert.False(t, s.shouldDefer(higherPriority))

	// A requester with a strictly later timestamp is lower priority: we
	// defer it, and our own pending request will win the race.
	lowerPriority := requestKey{ts: myKey.ts + 1, nodeID: 1}
	assert.True(t, s.shouldDefer(lowerPriority))
}

func TestShouldDeferTieBrokenByNodeID(t *testing.T) {
	s := newState(5)
	s.mu.Lock()
	key := requestKey{ts: 10, nodeID: 5}
	s.myRequest = &key
	s.ra = Wanted
	s.mu.Unlock()

	// Same timestamp, lower node id wins: node 3 outranks node 5, so it is
	// granted without deferral.
	assert.False(t, s.shouldDefer(requestKey{ts: 10, nodeID: 3}))
	// Same timestamp, higher node id loses: node 7 does not outrank node 5,
	// so it is deferred.
	assert.True(t, s.shouldDefer(requestKey{ts: 10, nodeID: 7}))
}

func TestMarkGrantedDrainsOutstanding(t *testing.T) {
	s := newState(1)
	clock := lamport.New()
	s.enterWanted(clock, []int64{2, 3})

	assert.False(t, s.markGranted(2))
	assert.True(t, s.markGranted(3))
}
