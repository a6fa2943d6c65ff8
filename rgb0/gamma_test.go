package rgb0

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityGamma(t *testing.T) {
	lut := IdentityGamma()
	require.Len(t, lut, 256)
	for i, v := range lut {
		assert.Equal(t, uint16(i), v)
	}
}

func TestGammaCurveOneIsIdentity(t *testing.T) {
	assert.Equal(t, IdentityGamma(), GammaCurve(1))
}

func TestGammaCurve(t *testing.T) {
	lut := GammaCurve(2.2)
	require.Len(t, lut, 256)
	assert.Equal(t, uint16(0), lut[0])
	assert.Equal(t, uint16(255), lut[255])
	for i := 1; i < 256; i++ {
		assert.LessOrEqual(t, lut[i-1], lut[i])
		assert.LessOrEqual(t, lut[i], uint16(i)) // 2.2 darkens everywhere
	}
}
