package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/openebs/mayastor-go/internal/grpcutil"
	"github.com/openebs/mayastor-go/nodeclient"
	"github.com/openebs/mayastor-go/nodeclient/grpctest"
)

func startNode(t *testing.T) (*nodeclient.Handle, string) {
	t.Helper()

	srv := grpctest.StartServer(t)

	h, err := nodeclient.Connect(context.Background(), srv.Addr(), NewDialer())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = h.Close()
	})

	host, _, err := net.SplitHostPort(srv.Addr())
	require.NoError(t, err)

	return h, host
}

func TestConnect_NodeUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := nodeclient.Connect(ctx, "127.0.0.1:1", NewDialer())
	assert.Error(t, err)
}

func TestAsTarget(t *testing.T) {
	h, host := startNode(t)

	assert.Equal(t, fmt.Sprintf("nvmt://%s", host), h.AsTarget())
}

func TestBdevLifecycle(t *testing.T) {
	ctx := context.Background()
	h, host := startNode(t)

	uri, err := h.CreateBlockDevice(ctx, "malloc:///disk0?size_mb=64")
	require.NoError(t, err)
	assert.Equal(t, "malloc:///disk0?size_mb=64", uri)

	bdevs, err := h.ListBlockDevices(ctx)
	require.NoError(t, err)
	require.Len(t, bdevs, 1)
	assert.Equal(t, "disk0", bdevs[0].Name)
	assert.Equal(t, uint32(512), bdevs[0].BlockSize)

	shareURI, err := h.ShareBlockDevice(ctx, "disk0", "nvmf")
	require.NoError(t, err)
	assert.Contains(t, shareURI, "nvmf://")
	assert.Contains(t, shareURI, host)

	require.NoError(t, h.UnshareBlockDevice(ctx, "disk0"))
	require.NoError(t, h.DestroyBlockDevice(ctx, uri))

	bdevs, err = h.ListBlockDevices(ctx)
	require.NoError(t, err)
	assert.Empty(t, bdevs)
}

func TestBdevErrors(t *testing.T) {
	ctx := context.Background()
	h, _ := startNode(t)

	tests := map[string]struct {
		call func() error
		code codes.Code
	}{
		"InvalidScheme": {
			call: func() error {
				_, err := h.CreateBlockDevice(ctx, "bogus:///disk0")
				return err
			},
			code: codes.InvalidArgument,
		},
		"DestroyMissing": {
			call: func() error {
				return h.DestroyBlockDevice(ctx, "malloc:///nope")
			},
			code: codes.NotFound,
		},
		"ShareUnknownProto": {
			call: func() error {
				_, err := h.ShareBlockDevice(ctx, "disk0", "ftp")
				return err
			},
			code: codes.InvalidArgument,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.code, grpcutil.ErrorCode(err))
		})
	}
}

func TestPoolLifecycle(t *testing.T) {
	ctx := context.Background()
	h, host := startNode(t)

	p, err := h.CreatePool(ctx, "pool0", "malloc:///disk0?size_mb=64")
	require.NoError(t, err)
	assert.Equal(t, "pool0", p.Name)
	assert.Equal(t, nodeclient.PoolOnline, p.State)
	assert.Equal(t, uint64(64<<20), p.Capacity)

	// Same name, same disks: the node treats it as already done.
	_, err = h.CreatePool(ctx, "pool0", "malloc:///disk0?size_mb=64")
	require.NoError(t, err)

	// Same name, different disks is a conflict.
	_, err = h.CreatePool(ctx, "pool0", "malloc:///disk1?size_mb=64")
	assert.True(t, grpcutil.IsAlreadyExists(err))

	uris, err := h.PoolURIs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{fmt.Sprintf("pool://%s/pool0", host)}, uris)

	require.NoError(t, h.DestroyPool(ctx, "pool0"))

	// Destroying a pool that is gone is not an error.
	require.NoError(t, h.DestroyPool(ctx, "pool0"))

	pools, err := h.ListPools(ctx)
	require.NoError(t, err)
	assert.Empty(t, pools)
}

func TestReplicaLifecycle(t *testing.T) {
	ctx := context.Background()
	h, host := startNode(t)

	_, err := h.CreatePool(ctx, "pool0", "malloc:///disk0?size_mb=64")
	require.NoError(t, err)

	r, err := h.CreateReplica(ctx, "pool0", "repl-0", 16<<20)
	require.NoError(t, err)
	assert.Equal(t, "pool0", r.Pool)
	assert.False(t, r.Thin)
	assert.Equal(t, nodeclient.ShareNVMF, r.Share)
	assert.Contains(t, r.URI, fmt.Sprintf("nvmf://%s", host))

	pools, err := h.ListPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, uint64(16<<20), pools[0].Used)

	_, err = h.CreateReplica(ctx, "pool0", "repl-1", 128<<20)
	assert.Equal(t, codes.ResourceExhausted, grpcutil.ErrorCode(err))

	_, err = h.CreateReplica(ctx, "nopool", "repl-2", 16<<20)
	assert.True(t, grpcutil.IsNotFound(err))

	// Destroy takes only the uuid, the node resolves the pool itself.
	require.NoError(t, h.DestroyReplica(ctx, "repl-0"))

	replicas, err := h.ListReplicas(ctx)
	require.NoError(t, err)
	assert.Empty(t, replicas)

	assert.True(t, grpcutil.IsNotFound(h.DestroyReplica(ctx, "repl-0")))
}

func TestNexusLifecycle(t *testing.T) {
	ctx := context.Background()
	h, host := startNode(t)

	_, err := h.CreatePool(ctx, "pool0", "malloc:///disk0?size_mb=64")
	require.NoError(t, err)

	r, err := h.CreateReplica(ctx, "pool0", "repl-0", 16<<20)
	require.NoError(t, err)

	nx, err := h.CreateNexus(ctx, "nexus-0", 16<<20, []string{r.URI})
	require.NoError(t, err)
	require.Len(t, nx.Children, 1)
	assert.Equal(t, r.URI, nx.Children[0].URI)
	assert.Empty(t, nx.DeviceURI)

	deviceURI, err := h.PublishNexus(ctx, "nexus-0")
	require.NoError(t, err)
	assert.Contains(t, deviceURI, fmt.Sprintf("nvmf://%s", host))

	// Publishing again returns the same device URI.
	again, err := h.PublishNexus(ctx, "nexus-0")
	require.NoError(t, err)
	assert.Equal(t, deviceURI, again)

	nexuses, err := h.ListNexus(ctx)
	require.NoError(t, err)
	require.Len(t, nexuses, 1)
	assert.Equal(t, deviceURI, nexuses[0].DeviceURI)

	require.NoError(t, h.UnpublishNexus(ctx, "nexus-0"))
	require.NoError(t, h.DestroyNexus(ctx, "nexus-0"))

	assert.True(t, grpcutil.IsNotFound(h.DestroyNexus(ctx, "nexus-0")))
}

func TestProvisioningFlow(t *testing.T) {
	ctx := context.Background()
	h, host := startNode(t)

	uri, err := h.CreateBlockDevice(ctx, "malloc:///disk0?size_mb=64")
	require.NoError(t, err)

	_, err = h.CreatePool(ctx, "pool0", uri)
	require.NoError(t, err)

	uris, err := h.PoolURIs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{fmt.Sprintf("pool://%s/pool0", host)}, uris)
}

func TestHandle_CloseReleasesChannel(t *testing.T) {
	ctx := context.Background()
	h, _ := startNode(t)

	require.NoError(t, h.Close())

	_, err := h.ListPools(ctx)
	assert.ErrorIs(t, err, nodeclient.ErrClosed)
}
