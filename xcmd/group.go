package xcmd

import (
	"context"
	"sync"
)

// Group runs tasks in goroutines and cancels all of them when the first
// one fails. Unlike errgroup.Group, which cancels only after Wait, the
// group's context is canceled the moment the first error occurs.
type Group struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	wg      sync.WaitGroup
	sem     chan struct{}
	errOnce sync.Once
	err     error
}

// ErrGroup returns a new Group and an associated Context derived from ctx.
// The derived Context is canceled when the first task returns an error, or
// when all tasks complete, whichever happens first.
func ErrGroup(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancelCause(ctx)

	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// SetLimit caps the number of tasks running at once. It must be called
// before the first Go.
func (g *Group) SetLimit(limit int) {
	if limit > 0 {
		g.sem = make(chan struct{}, limit)
	}
}

// Go calls the given function in a new goroutine, waiting for a slot first
// when a limit is set. The first call to return a non-nil error cancels
// the group's context. All subsequent errors are ignored.
func (g *Group) Go(f func(ctx context.Context) error) {
	g.wg.Add(1)

	go func() {
		defer g.wg.Done()

		if g.sem != nil {
			select {
			case g.sem <- struct{}{}:
				defer func() { <-g.sem }()

			case <-g.ctx.Done():
				g.setErr(context.Cause(g.ctx))
				return
			}
		}

		if err := f(g.ctx); err != nil {
			g.setErr(err)
		}
	}()
}

func (g *Group) setErr(err error) {
	g.errOnce.Do(func() {
		g.err = err

		if g.cancel != nil {
			g.cancel(err)
		}
	})
}

// Wait blocks until all function calls from the Go method have returned,
// then returns the first non-nil error (if any) from them.
func (g *Group) Wait() error {
	g.wg.Wait()

	if g.cancel != nil {
		g.cancel(nil)
	}

	return g.err
}
