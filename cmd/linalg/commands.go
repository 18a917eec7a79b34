// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/matrix/gonumconv"
	"github.com/katalvlaran/lvlath/matrixio"
	"github.com/katalvlaran/lvlath/numeric"
)

// Relative disagreement with gonum tolerated under --verify. gonum always
// works in float64, so a float32 determinant gets the wider bound.
const (
	verifyRelTol        = 1e-9
	verifyRelTolFloat32 = 1e-4
)

// verifyTolerance returns the --verify bound for element kind T.
func verifyTolerance[T numeric.Number]() float64 {
	if numeric.Kind[T]() == numeric.KindFloat32 {
		return verifyRelTolFloat32
	}

	return verifyRelTol
}

func newDetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "det",
		Short: "Print the determinant of a square matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			return byKind(doc.DType,
				func() error { return runDet[float32](a, out, doc) },
				func() error { return runDet[float64](a, out, doc) },
				func() error { return runDet[int32](a, out, doc) },
				func() error { return runDet[int64](a, out, doc) },
				func() error { return runDet[uint32](a, out, doc) },
				func() error { return runDet[uint64](a, out, doc) },
			)
		},
	}
	addMatrixFlag(cmd.Flags())
	cmd.Flags().Bool(flagVerify, false, "cross-check the result against gonum's LU determinant")

	return cmd
}

func runDet[T numeric.Number](a *app, out io.Writer, doc *matrixio.Document) error {
	name := a.v.GetString(flagMatrix)
	m, err := matrixio.Matrix[T](doc, name)
	if err != nil {
		return err
	}
	d, err := m.Det()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "det(%s) = %v\n", name, d)

	if !a.v.GetBool(flagVerify) {
		return nil
	}
	ref, err := gonumconv.Det(m)
	if err != nil {
		return err
	}
	if !numeric.IsFloat[T]() {
		ref = math.Round(ref)
	}
	diff := math.Abs(float64(d) - ref)
	entry := a.log.WithFields(logrus.Fields{"matrix": name, "det": d, "gonum": ref, "diff": diff})
	if diff > verifyTolerance[T]()*math.Max(1, math.Abs(ref)) {
		entry.Warn("determinant disagrees with gonum")
		return fmt.Errorf("det(%s): gonum reports %g", name, ref)
	}
	entry.Info("determinant verified")

	return nil
}

func newMulCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply two matrices with compensated summation",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			return byKind(doc.DType,
				func() error { return runMul[float32](a, out, doc) },
				func() error { return runMul[float64](a, out, doc) },
				func() error { return runMul[int32](a, out, doc) },
				func() error { return runMul[int64](a, out, doc) },
				func() error { return runMul[uint32](a, out, doc) },
				func() error { return runMul[uint64](a, out, doc) },
			)
		},
	}
	cmd.Flags().String(flagLHS, "a", "left operand")
	cmd.Flags().String(flagRHS, "b", "right operand")
	cmd.Flags().Bool(flagNaive, false, "use a plain running sum instead of Kahan summation")
	cmd.Flags().Bool(flagYAML, false, "emit the product as a matrixio document")

	return cmd
}

func runMul[T numeric.Number](a *app, out io.Writer, doc *matrixio.Document) error {
	lhs, err := matrixio.Matrix[T](doc, a.v.GetString(flagLHS))
	if err != nil {
		return err
	}
	rhs, err := matrixio.Matrix[T](doc, a.v.GetString(flagRHS))
	if err != nil {
		return err
	}
	var opts []matrix.Option
	if a.v.GetBool(flagNaive) {
		opts = append(opts, matrix.WithNaiveSummation())
	}
	p, err := matrix.Mul(lhs, rhs, opts...)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"lhs":   fmt.Sprintf("%dx%d", lhs.Rows(), lhs.Cols()),
		"rhs":   fmt.Sprintf("%dx%d", rhs.Rows(), rhs.Cols()),
		"kahan": len(opts) == 0,
	}).Debug("product computed")

	return emit(a, out, "product", p)
}

func newTransposeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transpose",
		Short: "Print the transpose of a matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			return byKind(doc.DType,
				func() error { return runTranspose[float32](a, out, doc) },
				func() error { return runTranspose[float64](a, out, doc) },
				func() error { return runTranspose[int32](a, out, doc) },
				func() error { return runTranspose[int64](a, out, doc) },
				func() error { return runTranspose[uint32](a, out, doc) },
				func() error { return runTranspose[uint64](a, out, doc) },
			)
		},
	}
	addMatrixFlag(cmd.Flags())
	cmd.Flags().Bool(flagYAML, false, "emit the result as a matrixio document")

	return cmd
}

func runTranspose[T numeric.Number](a *app, out io.Writer, doc *matrixio.Document) error {
	name := a.v.GetString(flagMatrix)
	m, err := matrixio.Matrix[T](doc, name)
	if err != nil {
		return err
	}

	return emit(a, out, name+"_t", m.Transpose())
}

// emit prints m either as a matrixio document or with Matrix.String.
func emit[T numeric.Number](a *app, out io.Writer, name string, m *matrix.Matrix[T]) error {
	if a.v.GetBool(flagYAML) {
		return matrixio.EncodeMatrix(out, name, m)
	}
	_, err := fmt.Fprint(out, m)

	return err
}

func newReduceCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Print sum, mean, min, max and argmax of a matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			return byKind(doc.DType,
				func() error { return runReduce[float32](a, out, doc) },
				func() error { return runReduce[float64](a, out, doc) },
				func() error { return runReduce[int32](a, out, doc) },
				func() error { return runReduce[int64](a, out, doc) },
				func() error { return runReduce[uint32](a, out, doc) },
				func() error { return runReduce[uint64](a, out, doc) },
			)
		},
	}
	addMatrixFlag(cmd.Flags())

	return cmd
}

func runReduce[T numeric.Number](a *app, out io.Writer, doc *matrixio.Document) error {
	m, err := matrixio.Matrix[T](doc, a.v.GetString(flagMatrix))
	if err != nil {
		return err
	}
	mean, err := m.Mean()
	if err != nil {
		return err
	}
	i, j := m.ArgMax()
	_, err = fmt.Fprintf(out, "sum=%v mean=%v min=%v max=%v argmax=(%d,%d)\n",
		m.Sum(), mean, m.Min(), m.Max(), i, j)

	return err
}
