package node

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

// peerClient is one outbound connection to a sibling node's
// MutualExclusionService. Connections are established once at startup and
// held for the node's lifetime; the peer set is fixed (spec Non-goal:
// dynamic membership is out of scope).
type peerClient struct {
	id     int64
	addr   string
	conn   *grpc.ClientConn
	client pb.MutualExclusionServiceClient
}

// dialPeer opens an insecure gRPC connection to a peer. This mirrors the
// teacher's ConnectToPeer: a didactic cluster, not a TLS-hardened one.
func dialPeer(id int64, addr string) (*peerClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial peer %d at %s: %w", id, addr, err)
	}
	return &peerClient{
		id:     id,
		addr:   addr,
		conn:   conn,
		client: pb.NewMutualExclusionServiceClient(conn),
	}, nil
}

func (p *peerClient) Close() error {
	return p.conn.Close()
}
