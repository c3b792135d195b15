package cancel

import "context"

// ContextCanceler adapts a context.Context to the Canceler interface.
//
// Each call to Done() performs a non-blocking select on ctx.Done(), which
// costs a channel operation. Cancelling the parent also cancels this one.
type ContextCanceler struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewContext creates a ContextCanceler derived from parent.
// Call Cancel when finished to release the derived context.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancel(parent)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Done returns true if the context has been cancelled.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel cancels the derived context.
func (c *ContextCanceler) Cancel() {
	c.cancel()
}

// Err returns the cause of cancellation, or nil while the context is live.
// A deadline on the parent surfaces as context.DeadlineExceeded.
func (c *ContextCanceler) Err() error {
	if c.ctx.Err() == nil {
		return nil
	}
	return context.Cause(c.ctx)
}

// Context returns the derived context.Context.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
