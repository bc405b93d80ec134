package node

import (
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/ArtilBr/distributed-computing-TP1/internal/lamport"
	"github.com/ArtilBr/distributed-computing-TP1/internal/metrics"
	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

// PeerConfig names one sibling's id and dial address, in the
// "id@host:port" shape documented in SPEC_FULL.md §6.
type PeerConfig struct {
	ID   int64
	Addr string
}

// Config is everything a Node needs to start: its own identity, the fixed
// peer set, where to reach the print server, and the timeouts governing
// one critical-section attempt.
type Config struct {
	ID          int64
	ListenAddr  string
	Peers       []PeerConfig
	PrinterAddr string

	AckTimeout     time.Duration
	ReleaseTimeout time.Duration
	DrainSlack     time.Duration
	PrintTimeout   time.Duration

	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Node is one peer in the cluster: the RA state machine, the gRPC server
// that answers peers, the clients dialed out to peers and the print
// server, and the driver that runs local critical-section attempts.
type Node struct {
	id      int64
	log     *zap.Logger
	metric  *metrics.Metrics
	clock   *lamport.Clock
	st      *state
	peers   []*peerClient
	peerIDs []int64
	printer *printClient
	server  *exclusionServer
	bc      *broadcaster
	drv     *driver

	grpcServer *grpc.Server
	listenAddr string
}

// New dials every configured peer and the print server, then assembles the
// node. Dialing with grpc.NewClient is lazy (no connection is actually
// attempted here); the first RPC triggers it.
func New(cfg Config) (*Node, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("node: Config.Logger is required")
	}
	if cfg.Metrics == nil {
		return nil, fmt.Errorf("node: Config.Metrics is required")
	}

	ackTimeout := cfg.AckTimeout
	if ackTimeout <= 0 {
		ackTimeout = DefaultAckTimeout
	}
	releaseTimeout := cfg.ReleaseTimeout
	if releaseTimeout <= 0 {
		releaseTimeout = DefaultReleaseTimeout
	}
	drainSlack := cfg.DrainSlack
	if drainSlack <= 0 {
		drainSlack = DefaultDrainSlack
	}

	clock := lamport.New()
	st := newState(cfg.ID)

	peers := make([]*peerClient, 0, len(cfg.Peers))
	peerIDs := make([]int64, 0, len(cfg.Peers))
	for _, pc := range cfg.Peers {
		pcli, err := dialPeer(pc.ID, pc.Addr)
		if err != nil {
			return nil, err
		}
		peers = append(peers, pcli)
		peerIDs = append(peerIDs, pc.ID)
	}

	printer, err := dialPrinter(cfg.PrinterAddr, cfg.PrintTimeout)
	if err != nil {
		return nil, err
	}

	srv := &exclusionServer{st: st, clock: clock, log: cfg.Logger, metric: cfg.Metrics}
	bc := &broadcaster{
		peers:          peers,
		clock:          clock,
		log:            cfg.Logger,
		metric:         cfg.Metrics,
		ackTimeout:     ackTimeout,
		releaseTimeout: releaseTimeout,
	}
	drv := &driver{
		st:         st,
		bc:         bc,
		printer:    printer,
		log:        cfg.Logger,
		metric:     cfg.Metrics,
		drainBound: ackTimeout + drainSlack,
	}

	grpcServer := grpc.NewServer()
	pb.RegisterMutualExclusionServiceServer(grpcServer, srv)

	return &Node{
		id:         cfg.ID,
		log:        cfg.Logger,
		metric:     cfg.Metrics,
		clock:      clock,
		st:         st,
		peers:      peers,
		peerIDs:    peerIDs,
		printer:    printer,
		server:     srv,
		bc:         bc,
		drv:        drv,
		grpcServer: grpcServer,
		listenAddr: cfg.ListenAddr,
	}, nil
}

// Serve opens the listen socket and blocks serving the
// MutualExclusionService until the server is stopped. Run it in its own
// goroutine.
func (n *Node) Serve() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("node %d: listen on %s: %w", n.id, n.listenAddr, err)
	}
	n.log.Info("serving MutualExclusionService", zap.String("addr", n.listenAddr))
	return n.grpcServer.Serve(lis)
}

// Stop gracefully stops the gRPC server and closes every outbound
// connection.
func (n *Node) Stop() {
	n.grpcServer.GracefulStop()
	for _, p := range n.peers {
		_ = p.Close()
	}
	_ = n.printer.Close()
}

// RequestAndRun runs one full WANTED -> HELD -> RELEASED attempt carrying
// payload as the print job body. It is safe to call repeatedly but not
// concurrently with itself: the workload generator drives one attempt at
// a time, as spec §4.5 assumes a single outstanding local request.
func (n *Node) RequestAndRun(payload string) Result {
	return n.drv.requestAndRun(n.id, n.peerIDs, payload)
}

// State reports the node's current RA state, for tests and diagnostics.
func (n *Node) State() State {
	return n.st.current()
}
