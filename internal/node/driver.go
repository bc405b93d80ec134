package node

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ArtilBr/distributed-computing-TP1/internal/metrics"
	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

// Default deadlines from spec §4.4/§4.5.
const (
	DefaultAckTimeout     = 120 * time.Second
	DefaultReleaseTimeout = 5 * time.Second
	DefaultDrainSlack     = 5 * time.Second
)

// Result is what a single RequestAndRun attempt produces for the caller.
type Result struct {
	Granted bool
	Info    string
}

// driver is the single entry point described in spec §4.5: it orchestrates
// WANTED -> HELD -> RELEASED for one local attempt at a time.
type driver struct {
	st      *state
	bc      *broadcaster
	printer *printClient
	log     *zap.Logger
	metric  *metrics.Metrics

	drainBound time.Duration // ackTimeout + slack, from spec §4.5 step 2
}

// requestAndRun runs one full attempt: enter WANTED, broadcast, wait for
// drain (bounded), enter HELD, call the printer, enter RELEASED, broadcast
// release. CS-body errors are captured in the result but never skip the
// release step.
func (d *driver) requestAndRun(nodeID int64, peerIDs []int64, payload string) Result {
	d.metric.Attempts.Inc()

	myKey, reqNum := d.st.enterWanted(d.bc.clock, peerIDs)
	d.log.Info("entering WANTED",
		zap.Int64("ts", myKey.ts), zap.Int64("request_number", reqNum))

	req := &pb.AccessRequest{
		ClientId:         nodeID,
		LamportTimestamp: myKey.ts,
		RequestNumber:    reqNum,
	}

	drained := make(chan struct{})
	go func() {
		d.bc.broadcastRequest(d.st, req)
		close(drained)
	}()

	select {
	case <-drained:
		// fall through to HELD
	case <-time.After(d.drainBound):
		d.metric.AttemptTimeouts.Inc()
		d.log.Warn("grant-drain timed out, aborting attempt",
			zap.Int64("ts", myKey.ts), zap.Int64("request_number", reqNum))
		d.abort(nodeID, myKey, reqNum)
		return Result{Granted: false, Info: "timeout waiting for peer grants"}
	}

	d.st.enterHeld()
	d.log.Info("entering HELD", zap.Int64("ts", myKey.ts), zap.Int64("request_number", reqNum))
	held := time.Now()

	printTS := d.bc.clock.Tick()
	ok, info, observedTS := d.printer.send(&pb.PrintRequest{
		ClientId:         nodeID,
		MessageContent:   payload,
		LamportTimestamp: printTS,
		RequestNumber:    reqNum,
	})
	if observedTS != 0 {
		d.bc.clock.Observe(observedTS)
	}

	d.metric.HoldDuration.Observe(time.Since(held).Seconds())
	d.log.Info("leaving HELD", zap.Bool("print_ok", ok), zap.String("print_info", info))

	d.release(nodeID, myKey, reqNum)

	return Result{Granted: true, Info: info}
}

// abort performs the WANTED -> RELEASED transition on a grant-drain
// timeout, then still broadcasts a release so that any peer that *did*
// grant (or deferred waiting on us) is not left relying on a reply that
// will never come from a held attempt; the release's only real effect is
// advancing its clock, and it costs nothing to send in the aborted path.
func (d *driver) abort(nodeID int64, myKey requestKey, reqNum int64) {
	d.st.mu.Lock()
	if d.st.myRequest == nil {
		d.st.mu.Unlock()
		panic(&InvariantViolation{Reason: "abort called with nil myRequest"})
	}
	d.st.myRequest = nil
	d.st.outstanding = nil
	d.st.ra = Released
	d.st.cond.Broadcast()
	d.st.mu.Unlock()

	d.broadcastRelease(nodeID, myKey, reqNum)
}

func (d *driver) release(nodeID int64, _ requestKey, _ int64) {
	key, reqNum := d.st.enterReleased()
	d.log.Info("entering RELEASED", zap.Int64("ts", key.ts), zap.Int64("request_number", reqNum))
	d.broadcastRelease(nodeID, key, reqNum)
}

func (d *driver) broadcastRelease(nodeID int64, key requestKey, reqNum int64) {
	ts := d.bc.clock.Tick()
	rel := &pb.AccessRelease{
		ClientId:         nodeID,
		LamportTimestamp: ts,
		RequestNumber:    reqNum,
	}
	d.bc.broadcastRelease(rel)
	_ = key // the release's own ts supersedes the request tuple once sent
}

func (r Result) String() string {
	return fmt.Sprintf("granted=%t info=%q", r.Granted, r.Info)
}
