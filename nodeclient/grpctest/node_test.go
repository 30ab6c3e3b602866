package grpctest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/openebs/mayastor-go/proto/mayastorpb"
)

func TestParseDeviceURI(t *testing.T) {
	tests := map[string]struct {
		uri      string
		wantName string
		wantSize uint64
		wantCode codes.Code
	}{
		"MallocWithSize": {
			uri:      "malloc:///disk0?size_mb=128",
			wantName: "disk0",
			wantSize: 128 << 20,
		},
		"AioDefaultSize": {
			uri:      "aio:///dev/sda",
			wantName: "dev/sda",
			wantSize: defaultDeviceSize,
		},
		"UringDevice": {
			uri:      "uring:///disk1?size_mb=64",
			wantName: "disk1",
			wantSize: 64 << 20,
		},
		"UnknownScheme": {
			uri:      "bogus:///disk0",
			wantCode: codes.InvalidArgument,
		},
		"BadSize": {
			uri:      "malloc:///disk0?size_mb=lots",
			wantCode: codes.InvalidArgument,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gotName, gotSize, err := parseDeviceURI(tt.uri)

			if tt.wantCode != codes.OK {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, gotName)
			assert.Equal(t, tt.wantSize, gotSize)
		})
	}
}

func TestNode_ReplicaSpaceAccounting(t *testing.T) {
	n := newNode("127.0.0.1:10124")

	p, err := n.createPool("pool0", []string{"malloc:///disk0?size_mb=64"})
	require.NoError(t, err)
	require.Equal(t, uint64(64<<20), p.capacity)

	_, err = n.createReplica("repl-0", "pool0", 48<<20, false, pb.ShareProtocolReplica_REPLICA_NVMF)
	require.NoError(t, err)
	assert.Equal(t, uint64(48<<20), p.used)

	// Thick creation past the pool capacity is refused.
	_, err = n.createReplica("repl-1", "pool0", 32<<20, false, pb.ShareProtocolReplica_REPLICA_NVMF)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// Thin replicas take no space up front.
	_, err = n.createReplica("repl-1", "pool0", 32<<20, true, pb.ShareProtocolReplica_REPLICA_NONE)
	require.NoError(t, err)
	assert.Equal(t, uint64(48<<20), p.used)

	require.NoError(t, n.destroyReplica("repl-0"))
	assert.Equal(t, uint64(0), p.used)
}

func TestNode_ReplicaShareURI(t *testing.T) {
	n := newNode("127.0.0.1:10124")

	_, err := n.createPool("pool0", []string{"malloc:///disk0?size_mb=64"})
	require.NoError(t, err)

	shared, err := n.createReplica("repl-0", "pool0", 8<<20, false, pb.ShareProtocolReplica_REPLICA_NVMF)
	require.NoError(t, err)
	assert.Equal(t, "nvmf://127.0.0.1:10124/nqn.2019-05.io.openebs:repl-0", shared.uri)

	local, err := n.createReplica("repl-1", "pool0", 8<<20, false, pb.ShareProtocolReplica_REPLICA_NONE)
	require.NoError(t, err)
	assert.Equal(t, "bdev:///repl-1", local.uri)
}

func TestNode_DestroyPoolCascades(t *testing.T) {
	n := newNode("127.0.0.1:10124")

	_, err := n.createPool("pool0", []string{"malloc:///disk0?size_mb=64"})
	require.NoError(t, err)

	_, err = n.createReplica("repl-0", "pool0", 8<<20, false, pb.ShareProtocolReplica_REPLICA_NONE)
	require.NoError(t, err)

	n.destroyPool("pool0")

	assert.Empty(t, n.listPools())
	assert.Empty(t, n.listReplicas())
}

func TestNode_ListingsAreSorted(t *testing.T) {
	n := newNode("127.0.0.1:10124")

	for _, name := range []string{"pool2", "pool0", "pool1"} {
		_, err := n.createPool(name, []string{"malloc:///" + name + "?size_mb=16"})
		require.NoError(t, err)
	}

	var names []string
	for _, p := range n.listPools() {
		names = append(names, p.name)
	}

	assert.Equal(t, []string{"pool0", "pool1", "pool2"}, names)
}
