package grpctest

import (
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/openebs/mayastor-go/internal/generic"
	pb "github.com/openebs/mayastor-go/proto/mayastorpb"
)

// nqnPrefix is the subsystem prefix the node uses for everything it exports
// over NVMe-oF.
const nqnPrefix = "nqn.2019-05.io.openebs"

const defaultDeviceSize = 64 << 20

var validSchemes = map[string]bool{
	"malloc": true,
	"aio":    true,
	"uring":  true,
	"nvmf":   true,
}

type bdev struct {
	name     string
	uri      string
	size     uint64
	shareURI string
}

type pool struct {
	name     string
	disks    []string
	capacity uint64
	used     uint64
}

type replica struct {
	uuid  string
	pool  string
	thin  bool
	size  uint64
	share pb.ShareProtocolReplica
	uri   string
}

type nexus struct {
	uuid      string
	size      uint64
	children  []string
	deviceURI string
}

// node holds the in-memory state behind the fake services. All mutations go
// through the mutex: the gRPC server handles calls concurrently.
type node struct {
	mut      sync.Mutex
	addr     string
	bdevs    map[string]*bdev
	pools    map[string]*pool
	replicas map[string]*replica
	nexuses  map[string]*nexus
}

func newNode(addr string) *node {
	return &node{
		addr:     addr,
		bdevs:    make(map[string]*bdev),
		pools:    make(map[string]*pool),
		replicas: make(map[string]*replica),
		nexuses:  make(map[string]*nexus),
	}
}

// parseDeviceURI validates the scheme and extracts the device name and size.
// This mirrors the validation the node applies when a device is first opened,
// which is exactly the point where clients expect invalid schemes to fail.
func parseDeviceURI(uri string) (name string, size uint64, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", 0, status.Errorf(codes.InvalidArgument, "invalid device uri %q", uri)
	}

	if !validSchemes[u.Scheme] {
		return "", 0, status.Errorf(codes.InvalidArgument, "unsupported scheme %q", u.Scheme)
	}

	name = u.Path
	if len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}

	if name == "" {
		name = u.Host
	}

	size = uint64(defaultDeviceSize)
	if mb := u.Query().Get("size_mb"); mb != "" {
		n, err := strconv.ParseUint(mb, 10, 64)
		if err != nil {
			return "", 0, status.Errorf(codes.InvalidArgument, "invalid size_mb in %q", uri)
		}

		size = n << 20
	}

	return name, size, nil
}

func (n *node) createBdev(uri string) (*bdev, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	name, size, err := parseDeviceURI(uri)
	if err != nil {
		return nil, err
	}

	if _, ok := n.bdevs[uri]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "bdev %s already exists", uri)
	}

	b := &bdev{name: name, uri: uri, size: size}
	n.bdevs[uri] = b

	return b, nil
}

func (n *node) destroyBdev(uri string) error {
	n.mut.Lock()
	defer n.mut.Unlock()

	if _, ok := n.bdevs[uri]; !ok {
		return status.Errorf(codes.NotFound, "bdev %s not found", uri)
	}

	delete(n.bdevs, uri)

	return nil
}

func (n *node) listBdevs() []*bdev {
	n.mut.Lock()
	defer n.mut.Unlock()

	bdevs := make([]*bdev, 0, len(n.bdevs))
	for _, uri := range generic.SortedKeys(n.bdevs) {
		bdevs = append(bdevs, n.bdevs[uri])
	}

	return bdevs
}

func (n *node) shareBdev(name, proto string) (string, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	if proto != "nvmf" && proto != "iscsi" {
		return "", status.Errorf(codes.InvalidArgument, "unsupported share protocol %q", proto)
	}

	for _, b := range n.bdevs {
		if b.name == name {
			b.shareURI = fmt.Sprintf("%s://%s/%s:%s", proto, n.addr, nqnPrefix, b.name)
			return b.shareURI, nil
		}
	}

	return "", status.Errorf(codes.NotFound, "bdev %s not found", name)
}

func (n *node) unshareBdev(name string) error {
	n.mut.Lock()
	defer n.mut.Unlock()

	for _, b := range n.bdevs {
		if b.name == name {
			b.shareURI = ""
			return nil
		}
	}

	return status.Errorf(codes.NotFound, "bdev %s not found", name)
}

func (n *node) createPool(name string, disks []string) (*pool, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	if len(disks) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "pool %s has no disks", name)
	}

	// Creating a pool that already exists with the same disks is fine,
	// anything else is a conflict.
	if p, ok := n.pools[name]; ok {
		if sameDisks(p.disks, disks) {
			return p, nil
		}

		return nil, status.Errorf(codes.AlreadyExists, "pool %s already exists", name)
	}

	var capacity uint64

	for _, disk := range disks {
		_, size, err := parseDeviceURI(disk)
		if err != nil {
			return nil, err
		}

		capacity += size
	}

	p := &pool{
		name:     name,
		disks:    append([]string(nil), disks...),
		capacity: capacity,
	}

	n.pools[name] = p

	return p, nil
}

func sameDisks(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// destroyPool removes the pool and every replica on it. Destroying a pool
// that does not exist is not an error.
func (n *node) destroyPool(name string) {
	n.mut.Lock()
	defer n.mut.Unlock()

	if _, ok := n.pools[name]; !ok {
		return
	}

	for uuid, r := range n.replicas {
		if r.pool == name {
			delete(n.replicas, uuid)
		}
	}

	delete(n.pools, name)
}

func (n *node) listPools() []*pool {
	n.mut.Lock()
	defer n.mut.Unlock()

	pools := make([]*pool, 0, len(n.pools))
	for _, name := range generic.SortedKeys(n.pools) {
		pools = append(pools, n.pools[name])
	}

	return pools
}

func (n *node) createReplica(uuid, poolName string, size uint64, thin bool, share pb.ShareProtocolReplica) (*replica, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	p, ok := n.pools[poolName]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "pool %s not found", poolName)
	}

	if _, ok := n.replicas[uuid]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "replica %s already exists", uuid)
	}

	if !thin && p.used+size > p.capacity {
		return nil, status.Errorf(codes.ResourceExhausted, "not enough free space on pool %s", poolName)
	}

	uri := fmt.Sprintf("bdev:///%s", uuid)
	if share == pb.ShareProtocolReplica_REPLICA_NVMF {
		uri = fmt.Sprintf("nvmf://%s/%s:%s", n.addr, nqnPrefix, uuid)
	}

	r := &replica{
		uuid:  uuid,
		pool:  poolName,
		thin:  thin,
		size:  size,
		share: share,
		uri:   uri,
	}

	if !thin {
		p.used += size
	}

	n.replicas[uuid] = r

	return r, nil
}

// destroyReplica resolves the owning pool from the uuid alone, the way the
// node does: callers never pass the pool to a destroy.
func (n *node) destroyReplica(uuid string) error {
	n.mut.Lock()
	defer n.mut.Unlock()

	r, ok := n.replicas[uuid]
	if !ok {
		return status.Errorf(codes.NotFound, "replica %s not found", uuid)
	}

	if p, ok := n.pools[r.pool]; ok && !r.thin {
		p.used -= r.size
	}

	delete(n.replicas, uuid)

	return nil
}

func (n *node) listReplicas() []*replica {
	n.mut.Lock()
	defer n.mut.Unlock()

	replicas := make([]*replica, 0, len(n.replicas))
	for _, uuid := range generic.SortedKeys(n.replicas) {
		replicas = append(replicas, n.replicas[uuid])
	}

	return replicas
}

func (n *node) createNexus(uuid string, size uint64, children []string) (*nexus, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	if len(children) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "nexus %s has no children", uuid)
	}

	if _, ok := n.nexuses[uuid]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "nexus %s already exists", uuid)
	}

	nx := &nexus{
		uuid:     uuid,
		size:     size,
		children: append([]string(nil), children...),
	}

	n.nexuses[uuid] = nx

	return nx, nil
}

func (n *node) destroyNexus(uuid string) error {
	n.mut.Lock()
	defer n.mut.Unlock()

	if _, ok := n.nexuses[uuid]; !ok {
		return status.Errorf(codes.NotFound, "nexus %s not found", uuid)
	}

	delete(n.nexuses, uuid)

	return nil
}

func (n *node) listNexus() []*nexus {
	n.mut.Lock()
	defer n.mut.Unlock()

	nexuses := make([]*nexus, 0, len(n.nexuses))
	for _, uuid := range generic.SortedKeys(n.nexuses) {
		nexuses = append(nexuses, n.nexuses[uuid])
	}

	return nexuses
}

// publishNexus is idempotent: publishing an already published nexus returns
// the existing device URI.
func (n *node) publishNexus(uuid string) (string, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	nx, ok := n.nexuses[uuid]
	if !ok {
		return "", status.Errorf(codes.NotFound, "nexus %s not found", uuid)
	}

	if nx.deviceURI == "" {
		nx.deviceURI = fmt.Sprintf("nvmf://%s/%s:nexus-%s", n.addr, nqnPrefix, uuid)
	}

	return nx.deviceURI, nil
}

func (n *node) unpublishNexus(uuid string) error {
	n.mut.Lock()
	defer n.mut.Unlock()

	nx, ok := n.nexuses[uuid]
	if !ok {
		return status.Errorf(codes.NotFound, "nexus %s not found", uuid)
	}

	nx.deviceURI = ""

	return nil
}
