package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fetchWithDependents reads a parent entity and its dependents concurrently
// and joins the results.
//
// Both reads always run to completion. The outcome is decided after the join:
// a parent read error wins, then a missing parent (notFound, whatever the
// dependents read returned), then a dependents read error. No partial result
// is ever returned. Deadlines come from ctx and the store.
func fetchWithDependents[P any, D any](
	ctx context.Context,
	notFound error,
	parent func(context.Context) (*P, error),
	dependents func(context.Context) ([]D, error),
) (*P, []D, error) {
	var (
		p          *P
		deps       []D
		pErr, dErr error
		g          errgroup.Group
	)
	g.Go(func() error {
		p, pErr = parent(ctx)
		return pErr
	})
	g.Go(func() error {
		deps, dErr = dependents(ctx)
		return dErr
	})
	_ = g.Wait()

	switch {
	case pErr != nil:
		return nil, nil, pErr
	case p == nil:
		return nil, nil, notFound
	case dErr != nil:
		return nil, nil, dErr
	}

	if deps == nil {
		deps = []D{}
	}
	return p, deps, nil
}
