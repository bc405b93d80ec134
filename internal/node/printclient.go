package node

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

// printClient is the node's connection to the external, single central
// "dumb" print server. It does not participate in the mutual-exclusion
// protocol and is called only from inside the critical section.
type printClient struct {
	conn    *grpc.ClientConn
	client  pb.PrintingServiceClient
	timeout time.Duration
}

func dialPrinter(addr string, timeout time.Duration) (*printClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial printer at %s: %w", addr, err)
	}
	return &printClient{conn: conn, client: pb.NewPrintingServiceClient(conn), timeout: timeout}, nil
}

// send calls SendToPrinter with a fresh timestamp and the given deadline.
// A transport failure surfaces as (false, message, 0) to the caller; per
// spec §7, the driver must still release the critical section regardless.
// On success the response's lamport_timestamp is returned so the driver
// can observe it, per spec §4.5 step 4.
func (p *printClient) send(req *pb.PrintRequest) (ok bool, info string, observedTS int64) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	resp, err := p.client.SendToPrinter(ctx, req)
	if err != nil {
		return false, fmt.Sprintf("print request failed: %v", err), 0
	}
	return resp.Success, resp.ConfirmationMessage, resp.LamportTimestamp
}

func (p *printClient) Close() error {
	return p.conn.Close()
}
