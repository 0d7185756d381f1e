// SPDX-License-Identifier: MIT
// The walkthrough itself: fixtures, one printed section per operation and the
// random draws.

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rubynetix/sparse-matrix/matrix"
)

// walkthrough prints sections to out and logs one structured event per step.
type walkthrough struct {
	out    io.Writer
	log    zerolog.Logger
	header *color.Color
	title  *color.Color
}

// run parses the configuration and executes the full walkthrough.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := ParseArgs(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cfg.LogLevel, cfg.NoColor)
	if err != nil {
		return err
	}
	w := newWalkthrough(stdout, logger, cfg.NoColor)

	logger.Info().
		Uint64("seed", cfg.Seed).
		Int("size", cfg.Size).
		Float64("fill", cfg.FillFactor).
		Strs("kinds", cfg.Kinds).
		Msg("starting walkthrough")

	if err := w.fixtures(); err != nil {
		return err
	}

	return w.random(cfg)
}

// newLogger returns a console zerolog logger on w at the named level.
func newLogger(w io.Writer, level string, noColor bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	console := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.Kitchen}

	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
}

func newWalkthrough(out io.Writer, logger zerolog.Logger, noColor bool) *walkthrough {
	w := &walkthrough{
		out:    out,
		log:    logger,
		header: color.New(color.FgCyan, color.Bold),
		title:  color.New(color.FgGreen),
	}
	if noColor {
		w.header.DisableColor()
		w.title.DisableColor()
	}

	return w
}

// banner prints a top-level heading.
func (w *walkthrough) banner(text string) {
	w.header.Fprintf(w.out, "\n== %s ==\n", text)
}

// show runs fn, prints its result under title and logs the step.
// Matrices are printed with their grid rendering; anything else with fmt.
func (w *walkthrough) show(title string, fn func() (any, error)) error {
	start := time.Now()
	v, err := fn()
	if err != nil {
		return fmt.Errorf("%s: %w", title, err)
	}

	w.title.Fprintf(w.out, "\n%s\n", title)
	ev := w.log.Debug().Str("step", title).Dur("elapsed", time.Since(start))
	switch x := v.(type) {
	case matrix.Matrix[int64]:
		ev = ev.Stringer("kind", x.Kind()).Int("rows", x.Rows()).Int("cols", x.Cols()).Int("nnz", x.NNZ())
		fmt.Fprint(w.out, x)
	default:
		fmt.Fprintln(w.out, x)
	}
	ev.Msg("step done")

	return nil
}

// family is one storage kind's fixture set: zero, ones, identity and a literal.
type family struct {
	name           string
	zero, ones, id matrix.Matrix[int64]
	lit            matrix.Matrix[int64]
}

// buildFamilies creates s1..s4 (sparse) and t1..t4 (tridiagonal).
func buildFamilies() ([]family, error) {
	s1, err := matrix.Zero[int64](matrix.KindSparse, 3, 3)
	if err != nil {
		return nil, err
	}
	s2, err := matrix.Filled[int64](matrix.KindSparse, 3, 3, 1)
	if err != nil {
		return nil, err
	}
	s3, err := matrix.Identity[int64](matrix.KindSparse, 3)
	if err != nil {
		return nil, err
	}
	s4, err := matrix.FromRows(matrix.KindSparse, [][]int64{{7, 2, 1}, {0, 3, -1}, {-3, 4, -2}})
	if err != nil {
		return nil, err
	}

	t1, err := matrix.Zero[int64](matrix.KindTridiagonal, 3, 3)
	if err != nil {
		return nil, err
	}
	t2, err := matrix.Filled[int64](matrix.KindTridiagonal, 3, 3, 1)
	if err != nil {
		return nil, err
	}
	t3, err := matrix.Identity[int64](matrix.KindTridiagonal, 3)
	if err != nil {
		return nil, err
	}
	t4, err := matrix.FromDiags([]int64{1, 2}, []int64{3, 4, 5}, []int64{6, 7})
	if err != nil {
		return nil, err
	}

	return []family{
		{name: "s", zero: s1, ones: s2, id: s3, lit: s4},
		{name: "t", zero: t1, ones: t2, id: t3, lit: t4},
	}, nil
}

// fixtures runs every section over both families.
func (w *walkthrough) fixtures() error {
	families, err := buildFamilies()
	if err != nil {
		return fmt.Errorf("building fixtures: %w", err)
	}
	for _, f := range families {
		for _, section := range []func(family) error{
			w.creation, w.access, w.scalarOps, w.matrixOps, w.predicates, w.mapping,
		} {
			if err := section(f); err != nil {
				return fmt.Errorf("%s fixtures: %w", f.name, err)
			}
		}
	}

	return nil
}

func (w *walkthrough) creation(f family) error {
	w.banner(fmt.Sprintf("Creation (%s)", f.lit.Kind()))
	for i, m := range []matrix.Matrix[int64]{f.zero, f.ones, f.id, f.lit} {
		m := m
		if err := w.show(fmt.Sprintf("%s%d:", f.name, i+1), func() (any, error) { return m, nil }); err != nil {
			return err
		}
	}

	return nil
}

func (w *walkthrough) access(f family) error {
	w.banner("Access")
	m := f.ones.Clone()
	name := f.name + "2"

	steps := []struct {
		title string
		fn    func() (any, error)
	}{
		{fmt.Sprintf("Accessing element %s(1,1):", name), func() (any, error) { return m.At(1, 1) }},
		{fmt.Sprintf("Setting %s(1,1) = 3:", name), func() (any, error) {
			_, err := m.Put(1, 1, 3)
			return m, err
		}},
		{fmt.Sprintf("Setting %s(1,2) = 0 (delete):", name), func() (any, error) {
			_, err := m.Put(1, 2, 0)
			return m, err
		}},
		{"Stored entries:", func() (any, error) {
			var out []matrix.Entry[int64]
			for e := range matrix.All(m) {
				out = append(out, e)
			}
			return out, nil
		}},
	}
	for _, s := range steps {
		if err := w.show(s.title, s.fn); err != nil {
			return err
		}
	}

	return nil
}

func (w *walkthrough) scalarOps(f family) error {
	w.banner("Scalar operations")
	m := f.zero

	steps := []struct {
		title string
		fn    func() (any, error)
	}{
		{"Scalar addition (+2):", func() (any, error) { return matrix.Plus(m, matrix.Scalar[int64](2)) }},
		{"Scalar subtraction (-2):", func() (any, error) { return matrix.Minus(m, matrix.Scalar[int64](2)) }},
		{"Scalar multiplication (*2):", func() (any, error) { return matrix.Times(m, matrix.Scalar[int64](2)) }},
		{"Matrix power of the literal (^2):", func() (any, error) { return matrix.Pow(f.lit, 2) }},
	}
	for _, s := range steps {
		if err := w.show(s.title, s.fn); err != nil {
			return err
		}
	}

	return nil
}

func (w *walkthrough) matrixOps(f family) error {
	w.banner("Matrix operations")
	a, b := f.ones, f.lit

	steps := []struct {
		title string
		fn    func() (any, error)
	}{
		{"Matrix addition:", func() (any, error) { return matrix.Plus(a, matrix.Of(b)) }},
		{"Matrix subtraction:", func() (any, error) { return matrix.Minus(a, matrix.Of(b)) }},
		{"Matrix multiplication:", func() (any, error) { return matrix.Times(a, matrix.Of(b)) }},
		{"Matrix division (a·adj(b), divide by det(b)):", func() (any, error) {
			adj, det, err := matrix.Inverse(b)
			if err != nil {
				return nil, err
			}
			p, err := matrix.Mul[int64](a, adj)
			if err != nil {
				return nil, err
			}
			return fmt.Sprintf("det = %d\n%s", det, matrix.Format(p)), nil
		}},
		{"Matrix comparison:", func() (any, error) { return matrix.Equal(a, b), nil }},
		{"Matrix sum:", func() (any, error) { return matrix.Sum(b) }},
		{"Matrix inverse (adjugate, determinant):", func() (any, error) {
			adj, det, err := matrix.Inverse(b)
			if err != nil {
				return nil, err
			}
			return fmt.Sprintf("det = %d\n%s", det, matrix.Format[int64](adj)), nil
		}},
		{"Matrix transpose:", func() (any, error) { return matrix.Transpose(b) }},
		{"Matrix trace:", func() (any, error) { return matrix.Trace(b) }},
		{"Matrix determinant:", func() (any, error) { return matrix.Det(b) }},
		{"Matrix rank:", func() (any, error) { return matrix.Rank(b) }},
		{"Matrix diagonal:", func() (any, error) { return matrix.Diagonal(b) }},
		{"Matrix tridiagonal band:", func() (any, error) {
			band, err := matrix.BandOf(b)
			if err != nil {
				return nil, err
			}
			return matrix.Matrix[int64](band), nil
		}},
	}
	for _, s := range steps {
		if err := w.show(s.title, s.fn); err != nil {
			return err
		}
	}

	return nil
}

func (w *walkthrough) predicates(f family) error {
	w.banner("Predicates")
	m := f.lit

	checks := []struct {
		title string
		fn    func(matrix.Matrix[int64]) bool
	}{
		{"Is symmetric?", matrix.IsSymmetric[int64]},
		{"Is positive?", matrix.IsPositive[int64]},
		{"Is identity?", matrix.IsIdentity[int64]},
		{"Is zero?", matrix.IsZero[int64]},
		{"Is diagonal?", matrix.IsDiagonal[int64]},
		{"Is lower triangular?", matrix.IsLowerTriangular[int64]},
		{"Is upper triangular?", matrix.IsUpperTriangular[int64]},
		{"Is lower Hessenberg?", matrix.IsLowerHessenberg[int64]},
		{"Is upper Hessenberg?", matrix.IsUpperHessenberg[int64]},
		{"Is invertible?", matrix.IsInvertible[int64]},
		{"Is orthogonal?", matrix.IsOrthogonal[int64]},
	}
	for _, c := range checks {
		c := c
		if err := w.show(c.title, func() (any, error) { return c.fn(m), nil }); err != nil {
			return err
		}
	}

	return nil
}

func (w *walkthrough) mapping(f family) error {
	w.banner("Mapping")
	m := f.lit
	plus5 := func(v int64, _, _ int) int64 { return v + 5 }

	steps := []struct {
		title string
		fn    func() (any, error)
	}{
		{"Operate on all addressable elements (+5):", func() (any, error) { return matrix.Map(m, plus5) }},
		{"Operate on diagonal elements (+5):", func() (any, error) {
			return matrix.MapDiagonal(m, func(v int64, _ int) int64 { return v + 5 })
		}},
		{"Operate on non-zero elements (+5):", func() (any, error) { return matrix.MapNonZero(m, plus5) }},
	}
	for _, s := range steps {
		if err := w.show(s.title, s.fn); err != nil {
			return err
		}
	}

	return nil
}

// random draws one matrix per configured kind from a seeded PCG source.
// The determinant is taken over a float64 view so large orders cannot wrap.
func (w *walkthrough) random(cfg *Config) error {
	kinds, err := cfg.ParsedKinds()
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	for _, kind := range kinds {
		w.banner(fmt.Sprintf("Random %s %d×%d (fill %g%%)", kind, cfg.Size, cfg.Size, cfg.FillFactor))
		var m matrix.Matrix[int64]
		err := w.show("Matrix:", func() (any, error) {
			var err error
			m, err = matrix.Random[int64](kind, rng,
				matrix.WithShape(cfg.Size, cfg.Size),
				matrix.WithFillFactor(cfg.FillFactor),
				matrix.WithValueRange(cfg.MinValue, cfg.MaxValue))
			return m, err
		})
		if err != nil {
			return err
		}
		if err := w.show("Determinant:", func() (any, error) { return floatDet(m) }); err != nil {
			return err
		}
		if err := w.show("Trace:", func() (any, error) { return matrix.Trace(m) }); err != nil {
			return err
		}
		if err := w.show("Is symmetric?", func() (any, error) { return matrix.IsSymmetric(m), nil }); err != nil {
			return err
		}
	}

	return nil
}

// floatDet copies m into a float64 matrix of the same kind and returns its determinant.
func floatDet(m matrix.Matrix[int64]) (float64, error) {
	f, err := matrix.Build(m.Kind(), m.Rows(), m.Cols(), func(r, c int) float64 {
		v, _ := m.At(r, c)
		return float64(v)
	})
	if err != nil {
		return 0, err
	}

	return matrix.Det(f)
}
