// SPDX-License-Identifier: MIT

// Package matrix: random matrix generation with functional options.
// This file defines:
//   - RandomOption / RandomOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Random, which draws a matrix of a given Kind from a caller-owned *rand.Rand.
//
// Design goals:
//   - Deterministic behavior: no global state; the same seed gives the same matrix.
//   - Exact fill: the result holds exactly round(cells·fill/100) nonzeros, where
//     cells is rows·cols for KindSparse and the band size for KindTridiagonal.
package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRandomSize is the default row and column count.
	DefaultRandomSize = 10

	// DefaultMinValue and DefaultMaxValue bound the drawn values (inclusive for integers).
	DefaultMinValue = -100
	DefaultMaxValue = 100

	// DefaultFillFactor is the percentage of addressable cells that receive a nonzero.
	DefaultFillFactor = 25.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicShapeInvalid      = "matrix: WithShape: rows and cols must be >= 0"
	panicValueRangeInvalid = "matrix: WithValueRange: need finite lo <= hi with a nonzero integer in range"
	panicFillFactorInvalid = "matrix: WithFillFactor: percent must be finite and within [0,100]"
)

// RandomOption mutates RandomOptions. Constructors panic only on nonsensical
// values (programmer error).
type RandomOption func(*RandomOptions)

// RandomOptions stores the effective configuration after applying the setters.
type RandomOptions struct {
	rows, cols int
	min, max   float64
	fill       float64
}

func defaultRandomOptions() RandomOptions {
	return RandomOptions{
		rows: DefaultRandomSize,
		cols: DefaultRandomSize,
		min:  DefaultMinValue,
		max:  DefaultMaxValue,
		fill: DefaultFillFactor,
	}
}

// WithShape sets the shape. A tridiagonal draw still requires rows == cols.
func WithShape(rows, cols int) RandomOption {
	if rows < 0 || cols < 0 {
		panic(panicShapeInvalid)
	}

	return func(o *RandomOptions) { o.rows, o.cols = rows, cols }
}

// WithValueRange bounds the drawn values to [lo, hi]. Integer element types
// draw from [ceil(lo), floor(hi)]; zero draws are rejected and redrawn, so that
// integer interval must hold a nonzero value.
func WithValueRange(lo, hi float64) RandomOption {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		panic(panicValueRangeInvalid)
	}
	if ilo, ihi := math.Ceil(lo), math.Floor(hi); ilo > ihi || (ilo == 0 && ihi == 0) {
		panic(panicValueRangeInvalid)
	}

	return func(o *RandomOptions) { o.min, o.max = lo, hi }
}

// WithFillFactor sets the percentage (0..100) of addressable cells that are nonzero.
func WithFillFactor(percent float64) RandomOption {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		panic(panicFillFactorInvalid)
	}

	return func(o *RandomOptions) { o.fill = percent }
}

// Random draws a matrix of the given kind.
//
// Implementation:
//   - Stage 1: resolve options and allocate an empty matrix (shape errors surface here).
//   - Stage 2: enumerate the addressable cells and pick k of them with a
//     partial Fisher-Yates shuffle driven by rng.
//   - Stage 3: sort the picks row-major and Put a nonzero value at each.
//
// Errors: ErrInvalidDimensions, ErrNonSquare, ErrUnknownKind.
func Random[T Number](kind Kind, rng *rand.Rand, opts ...RandomOption) (Matrix[T], error) {
	o := defaultRandomOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m, err := New[T](kind, o.rows, o.cols)
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}

	cells := addressableCells(m)
	k := int(math.Round(float64(len(cells)) * o.fill / 100))
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(cells)-i)
		cells[i], cells[j] = cells[j], cells[i]
	}
	picked := cells[:k]
	slices.Sort(picked)

	cols := max(m.Cols(), 1)
	for _, cell := range picked {
		_, _ = m.Put(cell/cols, cell%cols, drawNonZero[T](rng, o.min, o.max)) // safe: addressable cell
	}

	return m, nil
}

// addressableCells lists the flat (row*cols+col) positions a store accepts nonzeros at.
func addressableCells[T Number](m Matrix[T]) []int {
	rows, cols := m.Rows(), m.Cols()
	if m.Kind() != KindTridiagonal {
		cells := make([]int, rows*cols)
		for i := range cells {
			cells[i] = i
		}
		return cells
	}
	cells := make([]int, 0, max(3*rows-2, 0))
	for r := 0; r < rows; r++ {
		for c := max(r-1, 0); c < min(r+2, cols); c++ {
			cells = append(cells, r*cols+c)
		}
	}

	return cells
}

// isIntegral reports whether T truncates fractions.
func isIntegral[T Number]() bool {
	var one T = 1

	return one/2 == 0
}

// drawNonZero returns a nonzero value in [lo, hi].
func drawNonZero[T Number](rng *rand.Rand, lo, hi float64) T {
	var zero T
	if isIntegral[T]() {
		ilo, ihi := int64(math.Ceil(lo)), int64(math.Floor(hi))
		for {
			v := T(ilo + rng.Int64N(ihi-ilo+1))
			if v != zero {
				return v
			}
		}
	}
	for {
		v := T(lo + rng.Float64()*(hi-lo))
		if v != zero {
			return v
		}
	}
}
