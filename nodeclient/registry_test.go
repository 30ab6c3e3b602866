package nodeclient

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freshDialerMock hands out a new ready connection on every dial.
type freshDialerMock struct {
	dials int
}

func (d *freshDialerMock) DialContext(ctx context.Context, addr string) (Conn, error) {
	d.dials++
	return readyConn(), nil
}

// slowDialerMock simulates network latency and counts dials atomically so it
// can be shared between goroutines.
type slowDialerMock struct {
	delay time.Duration
	dials int32
}

func (d *slowDialerMock) DialContext(ctx context.Context, addr string) (Conn, error) {
	atomic.AddInt32(&d.dials, 1)
	time.Sleep(d.delay)

	return readyConn(), nil
}

// gatedDialerMock blocks dials to one address until released, dialing
// everything else immediately.
type gatedDialerMock struct {
	gatedAddr string
	release   chan struct{}
}

func (d *gatedDialerMock) DialContext(ctx context.Context, addr string) (Conn, error) {
	if addr == d.gatedAddr {
		select {
		case <-d.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return readyConn(), nil
}

func TestRegistry_GetReusesHandle(t *testing.T) {
	ctx := context.Background()
	dialer := &freshDialerMock{}
	reg := NewRegistry(dialer, kitlog.NewNopLogger())

	h1, err := reg.Get(ctx, "10.0.0.1")
	require.NoError(t, err)

	h2, err := reg.Get(ctx, "10.0.0.1")
	require.NoError(t, err)

	assert.Same(t, h1, h2)
	assert.Equal(t, 1, dialer.dials)
}

func TestRegistry_GetRedialsClosedHandle(t *testing.T) {
	ctx := context.Background()
	dialer := &freshDialerMock{}
	reg := NewRegistry(dialer, kitlog.NewNopLogger())

	h1, err := reg.Get(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.NoError(t, h1.Close())

	h2, err := reg.Get(ctx, "10.0.0.1")
	require.NoError(t, err)

	assert.NotSame(t, h1, h2)
	assert.False(t, h2.IsClosed())
	assert.Equal(t, 2, dialer.dials)
}

func TestRegistry_ConcurrentGetDialsOnce(t *testing.T) {
	ctx := context.Background()
	dialer := &slowDialerMock{delay: 100 * time.Millisecond}
	reg := NewRegistry(dialer, kitlog.NewNopLogger())

	const concurrency = 10

	handles := make([]*Handle, concurrency)
	errs := make([]error, concurrency)
	begin := make(chan struct{})

	wg := sync.WaitGroup{}
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go func(i int) {
			defer wg.Done()
			<-begin

			handles[i], errs[i] = reg.Get(ctx, "10.0.0.1")
		}(i)
	}

	close(begin)
	wg.Wait()

	for i := 0; i < concurrency; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, handles[i])
		assert.Same(t, handles[0], handles[i])
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&dialer.dials))
}

func TestRegistry_SlowDialDoesNotBlockOtherAddrs(t *testing.T) {
	ctx := context.Background()

	dialer := &gatedDialerMock{
		gatedAddr: "10.0.0.1:10124",
		release:   make(chan struct{}),
	}

	reg := NewRegistry(dialer, kitlog.NewNopLogger())

	stuck := make(chan error, 1)
	go func() {
		_, err := reg.Get(ctx, "10.0.0.1")
		stuck <- err
	}()

	// The other node must be reachable while the first dial hangs.
	done := make(chan error, 1)
	go func() {
		_, err := reg.Get(ctx, "10.0.0.2")
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dial to the second node blocked behind the first")
	}

	close(dialer.release)
	require.NoError(t, <-stuck)
}

func TestRegistry_Addrs(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(&freshDialerMock{}, kitlog.NewNopLogger())

	_, err := reg.Get(ctx, "10.0.0.1")
	require.NoError(t, err)

	_, err = reg.Get(ctx, "10.0.0.2")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"10.0.0.1", "10.0.0.2"}, reg.Addrs())
}

func TestRegistry_CloseAll(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(&freshDialerMock{}, kitlog.NewNopLogger())

	h1, err := reg.Get(ctx, "10.0.0.1")
	require.NoError(t, err)

	h2, err := reg.Get(ctx, "10.0.0.2")
	require.NoError(t, err)

	require.NoError(t, reg.CloseAll())

	assert.True(t, h1.IsClosed())
	assert.True(t, h2.IsClosed())
	assert.Empty(t, reg.Addrs())
}
