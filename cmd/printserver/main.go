// Command printserver runs the single, central "dumb" print server that
// every node in the cluster sends print jobs to once it holds the
// critical section.
package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/ArtilBr/distributed-computing-TP1/internal/logging"
	"github.com/ArtilBr/distributed-computing-TP1/internal/printservice"
	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

var (
	port     int
	minDelay time.Duration
	maxDelay time.Duration
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "printserver",
	Short: "Run the shared dumb print server",
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVar(&port, "port", 50100, "TCP port to listen on")
	rootCmd.Flags().DurationVar(&minDelay, "min-delay", 2*time.Second, "minimum simulated print delay")
	rootCmd.Flags().DurationVar(&maxDelay, "max-delay", 3*time.Second, "maximum simulated print delay")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug-level logging")
}

func run(cmd *cobra.Command, args []string) error {
	log, err := logging.New(0, debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", port, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterPrintingServiceServer(grpcServer, printservice.New(log, minDelay, maxDelay))

	log.Info("print server listening", zap.String("addr", lis.Addr().String()))
	return grpcServer.Serve(lis)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
