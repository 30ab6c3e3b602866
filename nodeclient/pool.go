package nodeclient

import "context"

type PoolState int32

const (
	PoolUnknown PoolState = iota
	PoolOnline
	PoolDegraded
	PoolFaulted
)

// Pool is a named aggregation of block devices replicas are carved from.
type Pool struct {
	Name     string
	Disks    []string
	State    PoolState
	Capacity uint64
	Used     uint64
}

type poolClient interface {
	// CreatePool creates a pool with the given name backed by the disk
	// device URIs. The backing devices are created implicitly by the node.
	CreatePool(ctx context.Context, name string, disks []string) (*Pool, error)

	// DestroyPool destroys the pool and all replicas on it.
	DestroyPool(ctx context.Context, name string) error

	// ListPools returns the pools present on the node. The call waits for
	// the transport channel to become ready instead of failing right away.
	ListPools(ctx context.Context) ([]Pool, error)
}
