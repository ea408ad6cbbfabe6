package tensors2d

import (
	"fmt"

	"github.com/sw965/blockgrid/blas32/tensor/2d"
	"gonum.org/v1/gonum/blas/blas32"
)

func Clone(gens []blas32.General) []blas32.General {
	clone := make([]blas32.General, len(gens))
	for i, gen := range gens {
		clone[i] = tensor2d.Clone(gen)
	}
	return clone
}

func Rotate90(gens []blas32.General) ([]blas32.General, error) {
	rotated := make([]blas32.General, len(gens))
	for i, gen := range gens {
		r, err := tensor2d.Rotate90(gen)
		if err != nil {
			return nil, fmt.Errorf("gens[%d]: %w", i, err)
		}
		rotated[i] = r
	}
	return rotated, nil
}

// Clamp bounds every element of every matrix in gens to [min, max] in place.
// Matrices before the first failing one have already been clamped.
func Clamp(gens []blas32.General, min, max float32) error {
	for i, gen := range gens {
		if err := tensor2d.Clamp(gen, min, max); err != nil {
			return fmt.Errorf("gens[%d]: %w", i, err)
		}
	}
	return nil
}
