package nodeclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dialerMock struct {
	conn    *ConnMock
	dialed  []string
	dialErr error
}

func (d *dialerMock) DialContext(ctx context.Context, addr string) (Conn, error) {
	d.dialed = append(d.dialed, addr)

	if d.dialErr != nil {
		return nil, d.dialErr
	}

	return d.conn, nil
}

// readyConn returns a mock that passes the connect-time probes.
func readyConn() *ConnMock {
	return &ConnMock{
		ListBdevsFunc: func(ctx context.Context) ([]BlockDevice, error) {
			return nil, nil
		},
		ListPoolsFunc: func(ctx context.Context) ([]Pool, error) {
			return nil, nil
		},
	}
}

func connect(t *testing.T, addr string, conn *ConnMock) *Handle {
	t.Helper()

	h, err := Connect(context.Background(), addr, &dialerMock{conn: conn})
	require.NoError(t, err)

	return h
}

func TestConnect_AppendsDefaultPort(t *testing.T) {
	dialer := &dialerMock{conn: readyConn()}

	h, err := Connect(context.Background(), "10.0.0.5", dialer)
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.5:10124"}, dialer.dialed)
	assert.Equal(t, "10.0.0.5", h.Addr())
}

func TestConnect_KeepsExplicitPort(t *testing.T) {
	dialer := &dialerMock{conn: readyConn()}

	h, err := Connect(context.Background(), "10.0.0.5:4000", dialer)
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.5:4000"}, dialer.dialed)
	assert.Equal(t, "10.0.0.5", h.Addr())
}

func TestConnect_ClosesConnWhenProbeFails(t *testing.T) {
	conn := readyConn()
	conn.ListPoolsFunc = func(ctx context.Context) ([]Pool, error) {
		return nil, assert.AnError
	}

	_, err := Connect(context.Background(), "10.0.0.5", &dialerMock{conn: conn})

	require.Error(t, err)
	assert.True(t, conn.Closed)
}

func TestConnect_DialError(t *testing.T) {
	dialer := &dialerMock{dialErr: assert.AnError}

	_, err := Connect(context.Background(), "10.0.0.5", dialer)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestAsTarget(t *testing.T) {
	h := connect(t, "10.0.0.5", readyConn())

	assert.Equal(t, "nvmt://10.0.0.5", h.AsTarget())
	assert.Equal(t, h.AsTarget(), h.AsTarget())
}

func TestPoolURIs(t *testing.T) {
	conn := readyConn()
	conn.ListPoolsFunc = func(ctx context.Context) ([]Pool, error) {
		return []Pool{{Name: "pool0"}, {Name: "pool1"}}, nil
	}

	h := connect(t, "10.0.0.5", conn)

	uris, err := h.PoolURIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"pool://10.0.0.5/pool0",
		"pool://10.0.0.5/pool1",
	}, uris)
}

func TestCreatePool_WrapsSingleDisk(t *testing.T) {
	conn := readyConn()

	var gotDisks []string

	conn.CreatePoolFunc = func(ctx context.Context, name string, disks []string) (*Pool, error) {
		gotDisks = disks
		return &Pool{Name: name, Disks: disks}, nil
	}

	h := connect(t, "10.0.0.5", conn)

	_, err := h.CreatePool(context.Background(), "pool0", "malloc:///disk0?size_mb=64")
	require.NoError(t, err)

	assert.Equal(t, []string{"malloc:///disk0?size_mb=64"}, gotDisks)
}

func TestCreateReplica_ThickAndShared(t *testing.T) {
	conn := readyConn()

	var (
		gotThin  bool
		gotShare ShareProtocol
	)

	conn.CreateReplicaFunc = func(ctx context.Context, pool, uuid string, size uint64, thin bool, share ShareProtocol) (*Replica, error) {
		gotThin, gotShare = thin, share
		return &Replica{UUID: uuid, Pool: pool, Size: size}, nil
	}

	h := connect(t, "10.0.0.5", conn)

	_, err := h.CreateReplica(context.Background(), "pool0", "uuid-0", 64<<20)
	require.NoError(t, err)

	assert.False(t, gotThin)
	assert.Equal(t, ShareNVMF, gotShare)
}

func TestPublishNexus_UnauthenticatedNVMF(t *testing.T) {
	conn := readyConn()

	var (
		gotKey   string
		gotShare ShareProtocol
	)

	conn.PublishNexusFunc = func(ctx context.Context, uuid, key string, share ShareProtocol) (string, error) {
		gotKey, gotShare = key, share
		return "nvmf://10.0.0.5/nqn:nexus-" + uuid, nil
	}

	h := connect(t, "10.0.0.5", conn)

	deviceURI, err := h.PublishNexus(context.Background(), "uuid-0")
	require.NoError(t, err)

	assert.Equal(t, "nvmf://10.0.0.5/nqn:nexus-uuid-0", deviceURI)
	assert.Equal(t, "", gotKey)
	assert.Equal(t, ShareNVMF, gotShare)
}

func TestCreateBlockDevice_PassesSchemeThrough(t *testing.T) {
	conn := readyConn()

	var gotURI string

	conn.CreateBdevFunc = func(ctx context.Context, uri string) (string, error) {
		gotURI = uri
		return uri, nil
	}

	h := connect(t, "10.0.0.5", conn)

	// Bogus schemes must reach the node untouched.
	uri, err := h.CreateBlockDevice(context.Background(), "bogus:///disk0")
	require.NoError(t, err)

	assert.Equal(t, "bogus:///disk0", gotURI)
	assert.Equal(t, "bogus:///disk0", uri)
}

func TestHandle_OperationsAfterClose(t *testing.T) {
	ctx := context.Background()
	h := connect(t, "10.0.0.5", readyConn())

	require.NoError(t, h.Close())
	require.True(t, h.IsClosed())

	_, err := h.ListPools(ctx)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = h.ListBlockDevices(ctx)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = h.PoolURIs(ctx)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = h.CreatePool(ctx, "pool0", "malloc:///disk0")
	assert.ErrorIs(t, err, ErrClosed)

	assert.ErrorIs(t, h.DestroyReplica(ctx, "uuid-0"), ErrClosed)
	assert.ErrorIs(t, h.UnpublishNexus(ctx, "uuid-0"), ErrClosed)

	// Closing again is fine.
	assert.NoError(t, h.Close())
}
