package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/openebs/mayastor-go/nodeclient"
	pb "github.com/openebs/mayastor-go/proto/mayastorpb"
)

// Dialer creates gRPC connections to storage nodes. The control plane is
// unauthenticated, so the transport is always insecure.
type Dialer struct{}

// NewDialer creates a new Dialer.
func NewDialer() *Dialer {
	return &Dialer{}
}

// DialContext connects to the node at the given address. It blocks until the
// connection is established and ready or the context is canceled.
func (d *Dialer) DialContext(ctx context.Context, addr string) (nodeclient.Conn, error) {
	creds := insecure.NewCredentials()

	grpcConn, err := grpc.DialContext(
		ctx,
		addr,
		grpc.WithBlock(),
		grpc.WithTransportCredentials(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("grpc dial failed: %w", err)
	}

	c := &Conn{
		mayastorClient: pb.NewMayastorClient(grpcConn),
		bdevClient:     pb.NewBdevRpcClient(grpcConn),
	}

	c.addOnCloseHook(func() error {
		return grpcConn.Close()
	})

	return c, nil
}
