package grpc

import (
	"context"
	"sync/atomic"

	"google.golang.org/grpc"

	"github.com/openebs/mayastor-go/internal/multierror"
	"github.com/openebs/mayastor-go/nodeclient"
	pb "github.com/openebs/mayastor-go/proto/mayastorpb"
)

var _ nodeclient.Conn = (*Conn)(nil)

// Conn is a nodeclient.Conn over the node's two gRPC services sharing a
// single client connection. Every method is one RPC: no retries, no caching,
// and errors come back exactly as the transport or the node produced them.
type Conn struct {
	mayastorClient pb.MayastorClient
	bdevClient     pb.BdevRpcClient
	onClose        []func() error
	closed         uint32
}

func (c *Conn) addOnCloseHook(f func() error) {
	c.onClose = append(c.onClose, f)
}

// Close releases the underlying channel. Calling it again is a no-op.
func (c *Conn) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closed, 0, 1) {
		return nil // already closed
	}

	errs := multierror.New[int]()

	for idx, f := range c.onClose {
		if err := f(); err != nil {
			errs.Add(idx, err)
		}
	}

	return errs.Combined()
}

func (c *Conn) IsClosed() bool {
	return atomic.LoadUint32(&c.closed) == 1
}

func (c *Conn) CreateBdev(ctx context.Context, uri string) (string, error) {
	resp, err := c.bdevClient.Create(ctx, &pb.BdevUri{Uri: uri})
	if err != nil {
		return "", err
	}

	return resp.Uri, nil
}

func (c *Conn) DestroyBdev(ctx context.Context, uri string) error {
	_, err := c.bdevClient.Destroy(ctx, &pb.BdevUri{Uri: uri})
	return err
}

func (c *Conn) ListBdevs(ctx context.Context) ([]nodeclient.BlockDevice, error) {
	resp, err := c.bdevClient.List(ctx, &pb.Null{}, grpc.WaitForReady(true))
	if err != nil {
		return nil, err
	}

	bdevs := make([]nodeclient.BlockDevice, len(resp.Bdevs))
	for idx, b := range resp.Bdevs {
		bdevs[idx] = nodeclient.BlockDevice{
			Name:      b.Name,
			UUID:      b.Uuid,
			NumBlocks: b.NumBlocks,
			BlockSize: b.BlkSize,
			Claimed:   b.Claimed,
			ClaimedBy: b.ClaimedBy,
			URI:       b.Uri,
			ShareURI:  b.ShareUri,
		}
	}

	return bdevs, nil
}

func (c *Conn) ShareBdev(ctx context.Context, name, proto string) (string, error) {
	resp, err := c.bdevClient.Share(ctx, &pb.BdevShareRequest{
		Name:  name,
		Proto: proto,
	})

	if err != nil {
		return "", err
	}

	return resp.Uri, nil
}

func (c *Conn) UnshareBdev(ctx context.Context, name string) error {
	_, err := c.bdevClient.Unshare(ctx, &pb.BdevShareRequest{Name: name})
	return err
}

func (c *Conn) CreatePool(ctx context.Context, name string, disks []string) (*nodeclient.Pool, error) {
	resp, err := c.mayastorClient.CreatePool(ctx, &pb.CreatePoolRequest{
		Name:  name,
		Disks: disks,
	})

	if err != nil {
		return nil, err
	}

	pool := toPool(resp)

	return &pool, nil
}

func (c *Conn) DestroyPool(ctx context.Context, name string) error {
	_, err := c.mayastorClient.DestroyPool(ctx, &pb.DestroyPoolRequest{Name: name})
	return err
}

func (c *Conn) ListPools(ctx context.Context) ([]nodeclient.Pool, error) {
	resp, err := c.mayastorClient.ListPools(ctx, &pb.Null{}, grpc.WaitForReady(true))
	if err != nil {
		return nil, err
	}

	pools := make([]nodeclient.Pool, len(resp.Pools))
	for idx, p := range resp.Pools {
		pools[idx] = toPool(p)
	}

	return pools, nil
}

func (c *Conn) CreateReplica(ctx context.Context, pool, uuid string, size uint64, thin bool, share nodeclient.ShareProtocol) (*nodeclient.Replica, error) {
	resp, err := c.mayastorClient.CreateReplica(ctx, &pb.CreateReplicaRequest{
		Uuid:  uuid,
		Pool:  pool,
		Size:  size,
		Thin:  thin,
		Share: pb.ShareProtocolReplica(share),
	})

	if err != nil {
		return nil, err
	}

	replica := toReplica(resp)

	return &replica, nil
}

func (c *Conn) DestroyReplica(ctx context.Context, uuid string) error {
	_, err := c.mayastorClient.DestroyReplica(ctx, &pb.DestroyReplicaRequest{Uuid: uuid})
	return err
}

func (c *Conn) ListReplicas(ctx context.Context) ([]nodeclient.Replica, error) {
	resp, err := c.mayastorClient.ListReplicas(ctx, &pb.Null{})
	if err != nil {
		return nil, err
	}

	replicas := make([]nodeclient.Replica, len(resp.Replicas))
	for idx, r := range resp.Replicas {
		replicas[idx] = toReplica(r)
	}

	return replicas, nil
}

func (c *Conn) CreateNexus(ctx context.Context, uuid string, size uint64, children []string) (*nodeclient.Nexus, error) {
	resp, err := c.mayastorClient.CreateNexus(ctx, &pb.CreateNexusRequest{
		Uuid:     uuid,
		Size:     size,
		Children: children,
	})

	if err != nil {
		return nil, err
	}

	nexus := toNexus(resp)

	return &nexus, nil
}

func (c *Conn) DestroyNexus(ctx context.Context, uuid string) error {
	_, err := c.mayastorClient.DestroyNexus(ctx, &pb.DestroyNexusRequest{Uuid: uuid})
	return err
}

func (c *Conn) ListNexus(ctx context.Context) ([]nodeclient.Nexus, error) {
	resp, err := c.mayastorClient.ListNexus(ctx, &pb.Null{})
	if err != nil {
		return nil, err
	}

	nexuses := make([]nodeclient.Nexus, len(resp.NexusList))
	for idx, n := range resp.NexusList {
		nexuses[idx] = toNexus(n)
	}

	return nexuses, nil
}

// PublishNexus narrows the node's reply to the device URI, which is the only
// part callers ever need.
func (c *Conn) PublishNexus(ctx context.Context, uuid, key string, share nodeclient.ShareProtocol) (string, error) {
	resp, err := c.mayastorClient.PublishNexus(ctx, &pb.PublishNexusRequest{
		Uuid:  uuid,
		Key:   key,
		Share: pb.ShareProtocolNexus(share),
	})

	if err != nil {
		return "", err
	}

	return resp.DeviceUri, nil
}

func (c *Conn) UnpublishNexus(ctx context.Context, uuid string) error {
	_, err := c.mayastorClient.UnpublishNexus(ctx, &pb.UnpublishNexusRequest{Uuid: uuid})
	return err
}

func toPool(p *pb.Pool) nodeclient.Pool {
	return nodeclient.Pool{
		Name:     p.Name,
		Disks:    p.Disks,
		State:    nodeclient.PoolState(p.State),
		Capacity: p.Capacity,
		Used:     p.Used,
	}
}

func toReplica(r *pb.Replica) nodeclient.Replica {
	return nodeclient.Replica{
		UUID:  r.Uuid,
		Pool:  r.Pool,
		Thin:  r.Thin,
		Size:  r.Size,
		Share: nodeclient.ShareProtocol(r.Share),
		URI:   r.Uri,
	}
}

func toNexus(n *pb.Nexus) nodeclient.Nexus {
	children := make([]nodeclient.NexusChild, len(n.Children))
	for idx, ch := range n.Children {
		children[idx] = nodeclient.NexusChild{
			URI:   ch.Uri,
			State: ch.State,
		}
	}

	return nodeclient.Nexus{
		UUID:      n.Uuid,
		Size:      n.Size,
		State:     n.State,
		Children:  children,
		DeviceURI: n.DeviceUri,
	}
}
