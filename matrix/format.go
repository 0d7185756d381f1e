// SPDX-License-Identifier: MIT

// Package matrix - text rendering.
//
// Layout:
//   - one line per row, terminated by '\n';
//   - every column right-justified to the widest rendered value of that column;
//   - a single space between columns;
//   - the 0×0 null matrix renders as "null\n".
//
// Example:
//
//	100  0 0 0
//	  0  1 1 0
//	  0 -1 0 0

package matrix

import (
	"fmt"
	"strings"
)

// nullText is the rendering of the 0×0 matrix.
const nullText = "null\n"

// Format renders m in the aligned text layout described above.
// Complexity: O(rows·cols) time and memory (every cell is rendered once).
func Format[T Number](m Matrix[T]) string {
	if isNil(m) || m.Rows() == 0 {
		return nullText
	}
	rows, cols := m.Rows(), m.Cols()

	// Stage 1: render every cell; zeros share one rendering.
	var zero T
	zeroText := fmt.Sprint(zero)
	cells := make([]string, rows*cols)
	for i := range cells {
		cells[i] = zeroText
	}
	for e := range All(m) {
		cells[e.Row*cols+e.Col] = fmt.Sprint(e.Value)
	}

	// Stage 2: column widths.
	widths := make([]int, cols)
	for i, s := range cells {
		widths[i%cols] = max(widths[i%cols], len(s))
	}

	// Stage 3: emit.
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			s := cells[r*cols+c]
			sb.WriteString(strings.Repeat(" ", widths[c]-len(s)))
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
