package printservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ArtilBr/distributed-computing-TP1/proto/pb"
)

func TestSendToPrinterEchoesTimestamp(t *testing.T) {
	srv := New(zap.NewNop(), time.Millisecond, time.Millisecond)

	resp, err := srv.SendToPrinter(context.Background(), &pb.PrintRequest{
		ClientId:         7,
		MessageContent:   "hello",
		LamportTimestamp: 42,
		RequestNumber:    3,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, int64(42), resp.LamportTimestamp)
}

func TestSendToPrinterRespectsContextCancellation(t *testing.T) {
	srv := New(zap.NewNop(), time.Hour, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := srv.SendToPrinter(ctx, &pb.PrintRequest{ClientId: 1, LamportTimestamp: 1})
	require.Error(t, err)
}

func TestNewClampsMaxDelayToMin(t *testing.T) {
	srv := New(zap.NewNop(), 5*time.Second, time.Second)
	require.Equal(t, 5*time.Second, srv.minDelay)
	require.Equal(t, 5*time.Second, srv.maxDelay)
}
