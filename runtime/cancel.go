package runtime

import "context"

// CancelToken is a cloneable cooperative-cancellation handle. It wraps a
// context.Context so it composes with anything in the ecosystem that
// already accepts one (errgroup.WithContext, or the ctx that
// genproc.Generator.Execute takes),
// while giving call sites a simple boolean check.
type CancelToken struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewCancelToken creates a fresh, unlinked cancellation token.
func NewCancelToken() CancelToken {
	ctx, cancel := context.WithCancel(context.Background())
	return CancelToken{ctx: ctx, cancel: cancel}
}

// Cancel fires the token. Safe to call more than once.
func (t CancelToken) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
}

// Cancelled reports whether Cancel has been called.
func (t CancelToken) Cancelled() bool {
	select {
	case <-t.ctx.Done():
		return true
	default:
		return false
	}
}

// Done returns a channel closed once the token is cancelled, for
// select-based cooperative checks at a task's own safe points.
func (t CancelToken) Done() <-chan struct{} {
	return t.ctx.Done()
}

// Context exposes the underlying context, for library code (errgroup,
// etc.) that wants one directly.
func (t CancelToken) Context() context.Context {
	return t.ctx
}
