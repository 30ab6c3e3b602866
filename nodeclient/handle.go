package nodeclient

import (
	"context"
	"fmt"
	"net"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultPort is the control port a storage node listens on.
const DefaultPort = "10124"

// Handle is a client to the control plane of a single storage node. It keeps
// no state of its own besides the transport channel: every call is a single
// round trip and the node's answer is returned as is. A handle must be closed
// when no longer needed or the channel leaks.
type Handle struct {
	addr   string
	conn   Conn
	logger kitlog.Logger
}

// Connect establishes a connection to the storage node at addr and probes it
// by listing block devices and pools, waiting for the control service to
// become ready. The default control port is appended when addr carries none.
func Connect(ctx context.Context, addr string, dialer Dialer, opts ...Option) (*Handle, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	host, target := splitAddr(addr, o.port)

	conn, err := dialer.DialContext(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}

	h := &Handle{
		addr:   host,
		conn:   conn,
		logger: o.logger,
	}

	// Probe both services so that a handle is only ever returned for a node
	// whose control plane actually answers.
	if _, err := conn.ListBdevs(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("list bdevs on %s: %w", target, err)
	}

	if _, err := conn.ListPools(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("list pools on %s: %w", target, err)
	}

	level.Debug(h.logger).Log("msg", "connected to storage node", "addr", target)

	return h, nil
}

// splitAddr separates the host part used in derived URIs from the dial
// target, appending the control port when the address has none.
func splitAddr(addr, port string) (host, target string) {
	if h, _, err := net.SplitHostPort(addr); err == nil {
		return h, addr
	}

	return addr, net.JoinHostPort(addr, port)
}

// Addr returns the host address the handle was created with.
func (h *Handle) Addr() string {
	return h.addr
}

// AsTarget returns the node in the scheme used to designate it as the node a
// nexus shall be created on. The result depends only on the stored address.
func (h *Handle) AsTarget() string {
	return fmt.Sprintf("nvmt://%s", h.addr)
}

// CreateBlockDevice creates a bdev from the given URI and returns the URI it
// was created from. Supported schemes are nvmf://, aio://, uring:// and
// malloc://, but the scheme is deliberately not checked here: rejecting
// invalid ones is the node's job and tests rely on being able to exercise it.
func (h *Handle) CreateBlockDevice(ctx context.Context, uri string) (string, error) {
	if h.conn.IsClosed() {
		return "", ErrClosed
	}

	return h.conn.CreateBdev(ctx, uri)
}

// DestroyBlockDevice destroys the bdev created from the given URI.
func (h *Handle) DestroyBlockDevice(ctx context.Context, uri string) error {
	if h.conn.IsClosed() {
		return ErrClosed
	}

	return h.conn.DestroyBdev(ctx, uri)
}

// ShareBlockDevice exports the named bdev over the given protocol and
// returns the share URI.
func (h *Handle) ShareBlockDevice(ctx context.Context, name, proto string) (string, error) {
	if h.conn.IsClosed() {
		return "", ErrClosed
	}

	return h.conn.ShareBdev(ctx, name, proto)
}

// UnshareBlockDevice withdraws the named bdev from the fabric.
func (h *Handle) UnshareBlockDevice(ctx context.Context, name string) error {
	if h.conn.IsClosed() {
		return ErrClosed
	}

	return h.conn.UnshareBdev(ctx, name)
}

// ListBlockDevices returns all bdevs found on the node.
func (h *Handle) ListBlockDevices(ctx context.Context) ([]BlockDevice, error) {
	if h.conn.IsClosed() {
		return nil, ErrClosed
	}

	return h.conn.ListBdevs(ctx)
}

// CreatePool creates a pool with the given name backed by the device URI.
// The backing device is created implicitly by the node.
func (h *Handle) CreatePool(ctx context.Context, name, disk string) (*Pool, error) {
	if h.conn.IsClosed() {
		return nil, ErrClosed
	}

	return h.conn.CreatePool(ctx, name, []string{disk})
}

// DestroyPool destroys the pool.
func (h *Handle) DestroyPool(ctx context.Context, name string) error {
	if h.conn.IsClosed() {
		return ErrClosed
	}

	return h.conn.DestroyPool(ctx, name)
}

// ListPools returns the pools present on the node. Pool state is never
// cached: each call is a fresh query.
func (h *Handle) ListPools(ctx context.Context) ([]Pool, error) {
	if h.conn.IsClosed() {
		return nil, ErrClosed
	}

	return h.conn.ListPools(ctx)
}

// PoolURIs returns one pool://<addr>/<name> URI per pool on the node, in the
// order the node reported them.
func (h *Handle) PoolURIs(ctx context.Context) ([]string, error) {
	pools, err := h.ListPools(ctx)
	if err != nil {
		return nil, err
	}

	uris := make([]string, 0, len(pools))
	for _, p := range pools {
		uris = append(uris, fmt.Sprintf("pool://%s/%s", h.addr, p.Name))
	}

	return uris, nil
}

// CreateReplica creates a thick provisioned replica on the pool with the
// given UUID and size, shared over NVMe-oF.
func (h *Handle) CreateReplica(ctx context.Context, pool, uuid string, size uint64) (*Replica, error) {
	if h.conn.IsClosed() {
		return nil, ErrClosed
	}

	return h.conn.CreateReplica(ctx, pool, uuid, size, false, ShareNVMF)
}

// DestroyReplica destroys the replica by UUID. The owning pool is resolved
// within the node.
func (h *Handle) DestroyReplica(ctx context.Context, uuid string) error {
	if h.conn.IsClosed() {
		return ErrClosed
	}

	return h.conn.DestroyReplica(ctx, uuid)
}

// ListReplicas returns the replicas present on the node across all pools.
func (h *Handle) ListReplicas(ctx context.Context) ([]Replica, error) {
	if h.conn.IsClosed() {
		return nil, ErrClosed
	}

	return h.conn.ListReplicas(ctx)
}

// CreateNexus creates a nexus with the given UUID and size from the child
// URIs, which are typically nvmf:// URIs of replicas on other nodes.
func (h *Handle) CreateNexus(ctx context.Context, uuid string, size uint64, children []string) (*Nexus, error) {
	if h.conn.IsClosed() {
		return nil, ErrClosed
	}

	return h.conn.CreateNexus(ctx, uuid, size, children)
}

// DestroyNexus tears the nexus down.
func (h *Handle) DestroyNexus(ctx context.Context, uuid string) error {
	if h.conn.IsClosed() {
		return ErrClosed
	}

	return h.conn.DestroyNexus(ctx, uuid)
}

// ListNexus returns the nexus devices present on the node.
func (h *Handle) ListNexus(ctx context.Context) ([]Nexus, error) {
	if h.conn.IsClosed() {
		return nil, ErrClosed
	}

	return h.conn.ListNexus(ctx)
}

// PublishNexus exposes the nexus over NVMe-oF without encryption and returns
// the device URI other nodes attach to.
func (h *Handle) PublishNexus(ctx context.Context, uuid string) (string, error) {
	if h.conn.IsClosed() {
		return "", ErrClosed
	}

	return h.conn.PublishNexus(ctx, uuid, "", ShareNVMF)
}

// UnpublishNexus withdraws the nexus from the fabric.
func (h *Handle) UnpublishNexus(ctx context.Context, uuid string) error {
	if h.conn.IsClosed() {
		return ErrClosed
	}

	return h.conn.UnpublishNexus(ctx, uuid)
}

// IsClosed returns true once the handle's connection has been released.
func (h *Handle) IsClosed() bool {
	return h.conn.IsClosed()
}

// Close releases the connection. It is safe to call more than once.
func (h *Handle) Close() error {
	if h.conn.IsClosed() {
		return nil
	}

	level.Debug(h.logger).Log("msg", "closing connection", "addr", h.addr)

	return h.conn.Close()
}
