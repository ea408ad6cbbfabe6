// Package mathx provides bounded arithmetic helpers.
package mathx

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	ErrInvalidRange = errors.New("範囲エラー: min <= max である必要があります")
	ErrNaN          = errors.New("NaNエラー: 値がNaNです")
)

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// InvalidRangeError reports an interval whose bounds are inverted or NaN.
type InvalidRangeError struct {
	Min any
	Max any
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%v: min = %v, max = %v", ErrInvalidRange, e.Min, e.Max)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

func isNaN[N Number](x N) bool {
	return x != x
}

// Clamp returns x bounded to the closed interval [min, max].
// It fails with *InvalidRangeError when min > max or either bound is NaN, and with ErrNaN when x is NaN.
//
// Clampはxを閉区間[min, max]に収めた値を返します。
func Clamp[N Number](x, min, max N) (N, error) {
	if isNaN(min) || isNaN(max) || min > max {
		return 0, &InvalidRangeError{Min: min, Max: max}
	}
	if isNaN(x) {
		return 0, ErrNaN
	}
	if x < min {
		return min, nil
	}
	if x > max {
		return max, nil
	}
	return x, nil
}

// MustClamp is like Clamp but panics on error.
func MustClamp[N Number](x, min, max N) N {
	y, err := Clamp(x, min, max)
	if err != nil {
		panic(err)
	}
	return y
}

func ClampF32(x, min, max float32) (float32, error) {
	if math32.IsNaN(min) || math32.IsNaN(max) || min > max {
		return 0, &InvalidRangeError{Min: min, Max: max}
	}
	if math32.IsNaN(x) {
		return 0, ErrNaN
	}
	return math32.Max(min, math32.Min(x, max)), nil
}
