// Package pool provides a small bounded worker pool over errgroup.Group,
// with a single first error short-circuiting the rest. No other package in
// this module imports it: the MPC executor (pkg/mpc) and the delegation
// driver (pkg/delegate) evaluate gates and check openings sequentially.
package pool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool runs a bounded number of tasks concurrently under a shared context.
type Pool struct {
	g   *errgroup.Group
	ctx context.Context
}

// New returns a Pool that runs at most n tasks concurrently. n <= 0 means
// unbounded.
func New(ctx context.Context, n int) *Pool {
	g, gctx := errgroup.WithContext(ctx)
	if n > 0 {
		g.SetLimit(n)
	}
	return &Pool{g: g, ctx: gctx}
}

// Go schedules fn to run, blocking only if the pool is at its concurrency
// limit.
func (p *Pool) Go(fn func(ctx context.Context) error) {
	p.g.Go(func() error { return fn(p.ctx) })
}

// Wait blocks until all scheduled tasks complete, returning the first
// non-nil error, if any.
func (p *Pool) Wait() error { return p.g.Wait() }
