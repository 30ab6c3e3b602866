package nodeclient

import "context"

// ShareProtocol tells how a replica or nexus is exported to other nodes.
// The values match the wire protocol.
type ShareProtocol int32

const (
	ShareNone  ShareProtocol = 0
	ShareNVMF  ShareProtocol = 1
	ShareISCSI ShareProtocol = 2
)

// Replica is a provisioned storage unit of fixed size inside a pool.
type Replica struct {
	UUID  string
	Pool  string
	Thin  bool
	Size  uint64
	Share ShareProtocol
	URI   string
}

type replicaClient interface {
	// CreateReplica creates a replica of the given size on the pool.
	CreateReplica(ctx context.Context, pool, uuid string, size uint64, thin bool, share ShareProtocol) (*Replica, error)

	// DestroyReplica destroys the replica with the given UUID. The owning
	// pool is resolved by the node, not by the caller.
	DestroyReplica(ctx context.Context, uuid string) error

	// ListReplicas returns the replicas present on the node across all pools.
	ListReplicas(ctx context.Context) ([]Replica, error)
}
