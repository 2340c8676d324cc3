package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ziptie/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateVecLen covers nil, wrong length and matching length.
func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidateBinary accepts 0/1 masks and rejects anything else.
func TestValidateBinary(t *testing.T) {
	m, err := matrix.NewFilled(2, 2, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 0))
	require.NoError(t, matrix.ValidateBinary(m))

	require.NoError(t, m.Set(1, 1, 0.5))
	require.ErrorIs(t, matrix.ValidateBinary(m), matrix.ErrNonBinary)

	require.ErrorIs(t, matrix.ValidateBinary(nil), matrix.ErrNilMatrix)
}
