package nodeclient

import (
	"context"
	"errors"
)

// ErrClosed is returned for operations issued on a handle whose connection
// has already been released.
var ErrClosed = errors.New("connection closed")

// Conn is a client connection to the control plane of a single storage node.
type Conn interface {
	bdevClient
	poolClient
	replicaClient
	nexusClient

	// IsClosed returns true if the connection to the storage node is closed
	// and cannot be used anymore.
	IsClosed() bool

	// Close releases the transport channel. The node itself is unaffected:
	// pools, replicas and nexuses created over the connection stay as they are.
	Close() error
}

// Dialer is used to establish connections to storage nodes.
type Dialer interface {
	DialContext(ctx context.Context, addr string) (Conn, error)
}
