// SPDX-License-Identifier: MIT
// Package matrix - human-readable dumps for diagnostics.
//
// Layout:
//   - Vector: "[1, 2, 3]".
//   - Matrix: a "RxC matrix:" header, then one indented vector per line.
//   - Tensor: a "Tensor(depths=D, rows=R, cols=C):" header, then a
//     "depth d:" block per slice.
//
// Not for hot paths; values use the %v verb of T.

package matrix

import (
	"fmt"
	"strings"
)

const (
	_fmtRowOpen  = "["
	_fmtSep      = ", "
	_fmtRowClose = "]"
	_fmtIndent   = "  "
)

// String renders v as a bracketed, comma-separated list.
func (v Vector[T]) String() string {
	var b strings.Builder
	v.writeTo(&b)

	return b.String()
}

func (v Vector[T]) writeTo(b *strings.Builder) {
	b.WriteString(_fmtRowOpen)
	for i, x := range v {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(b, "%v", x)
	}
	b.WriteString(_fmtRowClose)
}

// String renders the shape header followed by one row per line.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d matrix:\n", m.r, m.c)
	m.writeRows(&b)

	return b.String()
}

func (m *Matrix[T]) writeRows(b *strings.Builder) {
	for _, row := range m.data {
		b.WriteString(_fmtIndent)
		row.writeTo(b)
		b.WriteByte('\n')
	}
}

// String renders every depth slice under its own heading.
func (t *Tensor[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor(depths=%d, rows=%d, cols=%d):\n", len(t.slices), t.rows, t.cols)
	for d, m := range t.slices {
		fmt.Fprintf(&b, "depth %d:\n", d)
		m.writeRows(&b)
	}

	return b.String()
}
