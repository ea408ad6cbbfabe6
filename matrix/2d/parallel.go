package matrix2d

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RotateEach rotates every grid in grids clockwise by n quarter turns using at most p goroutines.
// The first failure cancels the remaining work and is returned with the index of the failing grid.
//
// RotateEachはgridsの各グリッドを最大p個のゴルーチンで回転させます。
func RotateEach[Ss ~[]S, S ~[]E, E any](ctx context.Context, grids []Ss, n, p int) ([]Ss, error) {
	if p <= 0 {
		return nil, fmt.Errorf("並列数は1以上である必要があります: p = %d", p)
	}

	ys := make([]Ss, len(grids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p)
	for i := range grids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			y, err := RotateN(grids[i], n)
			if err != nil {
				return fmt.Errorf("grids[%d]: %w", i, err)
			}
			ys[i] = y
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ys, nil
}
