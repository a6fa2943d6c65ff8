package rgb0

import "math"

// IdentityGamma returns the 256-entry identity lookup table: entry i
// maps to i, applying no correction.
func IdentityGamma() []uint16 {
	lut := make([]uint16, gammaEntries)
	for i := range lut {
		lut[i] = uint16(i)
	}
	return lut
}

// GammaCurve returns a 256-entry power-curve lookup table scaled to
// the same 0-255 range the identity table uses. An exponent of 1
// reproduces the identity curve.
func GammaCurve(exp float64) []uint16 {
	lut := make([]uint16, gammaEntries)
	for i := range lut {
		v := math.Pow(float64(i)/255.0, exp) * 255.0
		lut[i] = uint16(math.Round(v))
	}
	return lut
}
