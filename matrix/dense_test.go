package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsolve/matrix"
)

func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewDenseFromRows_CopiesAndChecksShape(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	rows[1][2] = 99
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
	assert.Equal(t, 6.0, m.Get(1, 2))

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 7))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.Panics(t, func() { m.Get(2, 1) })
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 10))
	assert.Equal(t, 1.0, m.Get(0, 0))
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestDense_DoStopsEarly(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	assert.Equal(t, []float64{1, 2, 3}, seen)
}
