// Command node runs one peer in the print-mutex cluster: it serves the
// MutualExclusionService for its siblings and periodically drives its own
// critical-section attempts against the shared printer.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ArtilBr/distributed-computing-TP1/internal/logging"
	"github.com/ArtilBr/distributed-computing-TP1/internal/metrics"
	"github.com/ArtilBr/distributed-computing-TP1/internal/node"
	"github.com/ArtilBr/distributed-computing-TP1/internal/workload"
)

var (
	id          int64
	port        int
	peersFlag   string
	printerAddr string
	minWait     time.Duration
	maxWait     time.Duration
	metricsPort int
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "node",
	Short: "Run one peer of the Ricart-Agrawala print-mutex cluster",
	RunE:  run,
}

func init() {
	rootCmd.Flags().Int64Var(&id, "id", 0, "this node's numeric id (required, unique cluster-wide)")
	rootCmd.Flags().IntVar(&port, "port", 0, "TCP port to listen on for peer RPCs (required)")
	rootCmd.Flags().StringVar(&peersFlag, "peers", "", "comma-separated peer list, id@host:port,id@host:port,...")
	rootCmd.Flags().StringVar(&printerAddr, "printer", "localhost:50100", "address of the shared print server")
	rootCmd.Flags().DurationVar(&minWait, "min-wait", 1*time.Second, "minimum idle time between this node's print attempts")
	rootCmd.Flags().DurationVar(&maxWait, "max-wait", 5*time.Second, "maximum idle time between this node's print attempts")
	rootCmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "if nonzero, serve Prometheus metrics on this port")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug-level logging")
	_ = rootCmd.MarkFlagRequired("id")
	_ = rootCmd.MarkFlagRequired("port")
}

func run(cmd *cobra.Command, args []string) error {
	log, err := logging.New(id, debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	peers, err := parsePeers(peersFlag)
	if err != nil {
		return err
	}

	met := metrics.New(id)
	n, err := node.New(node.Config{
		ID:           id,
		ListenAddr:   fmt.Sprintf(":%d", port),
		Peers:        peers,
		PrinterAddr:  printerAddr,
		PrintTimeout: 30 * time.Second,
		Logger:       log,
		Metrics:      met,
	})
	if err != nil {
		return fmt.Errorf("build node: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- n.Serve() }()

	if metricsPort != 0 {
		go serveMetrics(metricsPort, met, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := workload.New(n, log, minWait, maxWait)
	go gen.Run(ctx)

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			log.Error("gRPC server exited", zap.Error(err))
		}
	}
	n.Stop()
	return nil
}

func serveMetrics(port int, m *metrics.Metrics, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	addr := fmt.Sprintf(":%d", port)
	log.Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("metrics server exited", zap.Error(err))
	}
}

// parsePeers parses the "id@host:port,id@host:port" format documented in
// SPEC_FULL.md §6, matching the teacher's own --peers convention.
func parsePeers(raw string) ([]node.PeerConfig, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]node.PeerConfig, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		fields := strings.SplitN(p, "@", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid peer entry %q: want id@host:port", p)
		}
		peerID, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid peer id in %q: %w", p, err)
		}
		out = append(out, node.PeerConfig{ID: peerID, Addr: fields[1]})
	}
	return out, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
