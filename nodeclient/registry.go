package nodeclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/openebs/mayastor-go/internal/generic"
	"github.com/openebs/mayastor-go/internal/multierror"
)

const defaultConnectTimeout = 30 * time.Second

// Registry keeps one handle per storage node address, dialing nodes lazily
// on first use. It is what a multi-node test harness holds instead of a bag
// of individual handles.
type Registry struct {
	mut            sync.RWMutex
	handles        map[string]*Handle
	inProgress     generic.SyncMap[string, chan struct{}]
	dialer         Dialer
	logger         kitlog.Logger
	opts           []Option
	connectTimeout time.Duration
}

// NewRegistry creates a registry that dials nodes with the given dialer.
// The opts are applied to every handle it creates.
func NewRegistry(dialer Dialer, logger kitlog.Logger, opts ...Option) *Registry {
	return &Registry{
		handles:        make(map[string]*Handle),
		dialer:         dialer,
		logger:         logger,
		opts:           opts,
		connectTimeout: defaultConnectTimeout,
	}
}

func (r *Registry) get(addr string) (*Handle, bool) {
	r.mut.RLock()

	h, ok := r.handles[addr]
	if !ok {
		r.mut.RUnlock()
		return nil, false
	}

	// The handle is present but was closed manually, so it is not usable.
	// Need to reacquire the lock and remove it from the registry.
	if h.IsClosed() {
		r.mut.RUnlock()
		r.mut.Lock()

		// A new handle might have been created while we were waiting for the lock.
		if h, ok := r.handles[addr]; ok && !h.IsClosed() {
			r.mut.Unlock()
			return h, true
		}

		delete(r.handles, addr)
		r.mut.Unlock()

		return nil, false
	}

	r.mut.RUnlock()

	return h, true
}

// connect dials the node without holding the registry lock, so a slow or
// unreachable node does not block lookups of the others. Concurrent calls
// for the same address are collapsed into a single dial.
func (r *Registry) connect(ctx context.Context, addr string) (*Handle, error) {
	ctx, cancel := context.WithTimeout(ctx, r.connectTimeout)
	defer cancel()

	var retry bool

	for {
		c := make(chan struct{})

		done, loaded := r.inProgress.LoadOrStore(addr, c)

		// Store failed means another goroutine is already dialing the node.
		// Wait for it to finish or for the context to expire.
		if loaded {
			close(c)

			select {
			case <-done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}

			if h, ok := r.get(addr); ok {
				return h, nil
			}

			// The other goroutine has failed to connect. Make one more attempt.
			if !retry {
				retry = true
				continue
			}

			return nil, fmt.Errorf("failed to connect to %s in another goroutine", addr)
		}

		defer r.inProgress.Delete(addr)
		defer close(done)

		// Now we are the one dialing the node.
		h, err := Connect(ctx, addr, r.dialer, r.opts...)
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", addr, err)
		}

		level.Info(r.logger).Log("msg", "connected to storage node", "addr", addr)

		r.mut.Lock()
		defer r.mut.Unlock()

		// A handle might have been created while we were dialing. If so,
		// keep the existing one and discard ours.
		if old, ok := r.handles[addr]; ok && !old.IsClosed() {
			_ = h.Close()
			return old, nil
		}

		r.handles[addr] = h

		return h, nil
	}
}

// Get returns the handle for the node at addr, connecting on first use.
// Handles that have been closed manually are dropped and redialed.
func (r *Registry) Get(ctx context.Context, addr string) (*Handle, error) {
	if h, ok := r.get(addr); ok {
		return h, nil
	}

	return r.connect(ctx, addr)
}

// Addrs returns the addresses of the nodes currently held by the registry.
func (r *Registry) Addrs() []string {
	r.mut.RLock()
	defer r.mut.RUnlock()

	addrs := make([]string, 0, len(r.handles))
	for addr := range r.handles {
		addrs = append(addrs, addr)
	}

	return addrs
}

// CloseAll releases every handle. Errors are collected per address so that a
// single failing node does not keep the others connected.
func (r *Registry) CloseAll() error {
	r.mut.Lock()
	defer r.mut.Unlock()

	errs := multierror.New[string]()

	for addr, h := range r.handles {
		if err := h.Close(); err != nil {
			errs.Add(addr, err)
		}

		delete(r.handles, addr)
	}

	return errs.Combined()
}
