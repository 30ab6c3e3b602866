package nodeclient

import "context"

// BlockDevice is a bdev as reported by the storage node. URI schemes are
// never interpreted on the client side: whatever the node accepts is valid.
type BlockDevice struct {
	Name      string
	UUID      string
	NumBlocks uint64
	BlockSize uint32
	Claimed   bool
	ClaimedBy string
	URI       string
	ShareURI  string
}

type bdevClient interface {
	// CreateBdev creates a block device from the given URI and returns the
	// URI the device was created from. The scheme is not checked locally so
	// that the node's own validation can be exercised.
	CreateBdev(ctx context.Context, uri string) (string, error)

	// DestroyBdev destroys the block device created from the given URI.
	DestroyBdev(ctx context.Context, uri string) error

	// ListBdevs returns all block devices found on the node. The call waits
	// for the transport channel to become ready instead of failing right away.
	ListBdevs(ctx context.Context) ([]BlockDevice, error)

	// ShareBdev exports the named block device over the given protocol
	// ("nvmf" or "iscsi") and returns the share URI.
	ShareBdev(ctx context.Context, name, proto string) (string, error)

	// UnshareBdev withdraws the named block device from the fabric.
	UnshareBdev(ctx context.Context, name string) error
}
