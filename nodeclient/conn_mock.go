package nodeclient

import "context"

var _ Conn = (*ConnMock)(nil)

// ConnMock is a Conn whose methods are pluggable per test. Methods that are
// called without a corresponding Func set will panic.
type ConnMock struct {
	CreateBdevFunc     func(ctx context.Context, uri string) (string, error)
	DestroyBdevFunc    func(ctx context.Context, uri string) error
	ListBdevsFunc      func(ctx context.Context) ([]BlockDevice, error)
	ShareBdevFunc      func(ctx context.Context, name, proto string) (string, error)
	UnshareBdevFunc    func(ctx context.Context, name string) error
	CreatePoolFunc     func(ctx context.Context, name string, disks []string) (*Pool, error)
	DestroyPoolFunc    func(ctx context.Context, name string) error
	ListPoolsFunc      func(ctx context.Context) ([]Pool, error)
	CreateReplicaFunc  func(ctx context.Context, pool, uuid string, size uint64, thin bool, share ShareProtocol) (*Replica, error)
	DestroyReplicaFunc func(ctx context.Context, uuid string) error
	ListReplicasFunc   func(ctx context.Context) ([]Replica, error)
	CreateNexusFunc    func(ctx context.Context, uuid string, size uint64, children []string) (*Nexus, error)
	DestroyNexusFunc   func(ctx context.Context, uuid string) error
	ListNexusFunc      func(ctx context.Context) ([]Nexus, error)
	PublishNexusFunc   func(ctx context.Context, uuid, key string, share ShareProtocol) (string, error)
	UnpublishNexusFunc func(ctx context.Context, uuid string) error

	Closed bool
}

func (m *ConnMock) CreateBdev(ctx context.Context, uri string) (string, error) {
	return m.CreateBdevFunc(ctx, uri)
}

func (m *ConnMock) DestroyBdev(ctx context.Context, uri string) error {
	return m.DestroyBdevFunc(ctx, uri)
}

func (m *ConnMock) ListBdevs(ctx context.Context) ([]BlockDevice, error) {
	return m.ListBdevsFunc(ctx)
}

func (m *ConnMock) ShareBdev(ctx context.Context, name, proto string) (string, error) {
	return m.ShareBdevFunc(ctx, name, proto)
}

func (m *ConnMock) UnshareBdev(ctx context.Context, name string) error {
	return m.UnshareBdevFunc(ctx, name)
}

func (m *ConnMock) CreatePool(ctx context.Context, name string, disks []string) (*Pool, error) {
	return m.CreatePoolFunc(ctx, name, disks)
}

func (m *ConnMock) DestroyPool(ctx context.Context, name string) error {
	return m.DestroyPoolFunc(ctx, name)
}

func (m *ConnMock) ListPools(ctx context.Context) ([]Pool, error) {
	return m.ListPoolsFunc(ctx)
}

func (m *ConnMock) CreateReplica(ctx context.Context, pool, uuid string, size uint64, thin bool, share ShareProtocol) (*Replica, error) {
	return m.CreateReplicaFunc(ctx, pool, uuid, size, thin, share)
}

func (m *ConnMock) DestroyReplica(ctx context.Context, uuid string) error {
	return m.DestroyReplicaFunc(ctx, uuid)
}

func (m *ConnMock) ListReplicas(ctx context.Context) ([]Replica, error) {
	return m.ListReplicasFunc(ctx)
}

func (m *ConnMock) CreateNexus(ctx context.Context, uuid string, size uint64, children []string) (*Nexus, error) {
	return m.CreateNexusFunc(ctx, uuid, size, children)
}

func (m *ConnMock) DestroyNexus(ctx context.Context, uuid string) error {
	return m.DestroyNexusFunc(ctx, uuid)
}

func (m *ConnMock) ListNexus(ctx context.Context) ([]Nexus, error) {
	return m.ListNexusFunc(ctx)
}

func (m *ConnMock) PublishNexus(ctx context.Context, uuid, key string, share ShareProtocol) (string, error) {
	return m.PublishNexusFunc(ctx, uuid, key, share)
}

func (m *ConnMock) UnpublishNexus(ctx context.Context, uuid string) error {
	return m.UnpublishNexusFunc(ctx, uuid)
}

func (m *ConnMock) IsClosed() bool {
	return m.Closed
}

func (m *ConnMock) Close() error {
	m.Closed = true
	return nil
}
