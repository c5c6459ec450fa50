package wp

import (
	"context"
	"fmt"
	"sync"
)

// memoContextKey follows the context-key convention used across the
// middleware packages.
type memoContextKey struct{}

// Memo is a request-scoped cache of client call results keyed by
// (operation, parameters). It exists so a single render pass does not issue
// the same upstream request twice; it must never outlive the request, so
// nothing here has a TTL or an eviction path.
type Memo struct {
	mu    sync.Mutex
	calls map[string]*memoCall
}

// memoCall is a single in-flight or completed call. Concurrent lookups for
// the same key wait on done instead of issuing a duplicate request.
type memoCall struct {
	done  chan struct{}
	value interface{}
	err   error
}

// NewMemo creates an empty request-scoped memo.
func NewMemo() *Memo {
	return &Memo{calls: make(map[string]*memoCall)}
}

// WithMemo returns a context carrying a fresh memo. Installed per request
// by the memo middleware.
func WithMemo(ctx context.Context) context.Context {
	return context.WithValue(ctx, memoContextKey{}, NewMemo())
}

// memoFromContext returns the request's memo, or nil when none is
// installed (client calls then pass through uncached).
func memoFromContext(ctx context.Context) *Memo {
	m, _ := ctx.Value(memoContextKey{}).(*Memo)
	return m
}

// do runs fn once per key for the lifetime of the memo and returns the
// memoized result, including memoized errors.
func (m *Memo) do(key string, fn func() (interface{}, error)) (interface{}, error) {
	m.mu.Lock()
	if call, ok := m.calls[key]; ok {
		m.mu.Unlock()
		<-call.done
		return call.value, call.err
	}
	call := &memoCall{done: make(chan struct{})}
	m.calls[key] = call
	m.mu.Unlock()

	call.value, call.err = fn()
	close(call.done)
	return call.value, call.err
}

// memoized wraps fn with the request memo when one is present.
func memoized(ctx context.Context, op string, params string, fn func() (interface{}, error)) (interface{}, error) {
	m := memoFromContext(ctx)
	if m == nil {
		return fn()
	}
	return m.do(fmt.Sprintf("%s|%s", op, params), fn)
}
