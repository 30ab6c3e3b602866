package nodeclient

import "context"

// NexusChild is a single backing device of a nexus, usually a replica
// shared by another node.
type NexusChild struct {
	URI   string
	State string
}

// Nexus is a logical volume assembled from child devices, presentable to
// initiators as a single block device once published.
type Nexus struct {
	UUID      string
	Size      uint64
	State     string
	Children  []NexusChild
	DeviceURI string
}

type nexusClient interface {
	// CreateNexus assembles a nexus of the given size from the child URIs.
	CreateNexus(ctx context.Context, uuid string, size uint64, children []string) (*Nexus, error)

	// DestroyNexus tears the nexus down.
	DestroyNexus(ctx context.Context, uuid string) error

	// ListNexus returns the nexus devices present on the node.
	ListNexus(ctx context.Context) ([]Nexus, error)

	// PublishNexus exposes the nexus over the given protocol and returns the
	// device URI initiators attach to. An empty key disables encryption.
	PublishNexus(ctx context.Context, uuid, key string, share ShareProtocol) (string, error)

	// UnpublishNexus withdraws the nexus from the fabric.
	UnpublishNexus(ctx context.Context, uuid string) error
}
