// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Parse wraps them with the
// offending row and column; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrEmptyMatrix is returned when the input holds no rows.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrNonSquare signals a row whose length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadValue signals a cell that is not a number.
	ErrBadValue = errors.New("matrix: cell is not a number")

	// ErrNaNInf signals a NaN or ±Inf cell.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative cell in the upper triangle.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrAsymmetry signals a[i][j] != a[j][i] under WithStrictSymmetry.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrGraphNil indicates that a nil *core.Graph was passed to Format.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("matrix: invalid option value")
)
