package rgb0

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationError(t *testing.T, err error) *ValidationError {
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want *ValidationError, got %T: %v", err, err)
	return verr
}

func TestEncodeNoFrames(t *testing.T) {
	data, err := Encode(nil, nil)
	assert.Nil(t, data)
	requireValidationError(t, err)
}

func TestEncodeRaggedPortCounts(t *testing.T) {
	frames := []Frame{
		{[]RGB{{}}, []RGB{{}}},
		{[]RGB{{}}},
	}
	data, err := Encode(frames, nil)
	assert.Nil(t, data)
	verr := requireValidationError(t, err)
	assert.Equal(t, 1, verr.Frame)
}

func TestEncodeRaggedPixelCounts(t *testing.T) {
	frames := []Frame{
		{[]RGB{{}, {}}, []RGB{{}}},
		{[]RGB{{}, {}}, []RGB{{}, {}}},
	}
	data, err := Encode(frames, nil)
	assert.Nil(t, data)
	verr := requireValidationError(t, err)
	assert.Equal(t, 1, verr.Frame)
	assert.Equal(t, 1, verr.Port)
}

func TestEncodePortCountMismatch(t *testing.T) {
	frames := solidFrames(2, 3, 1, RGB{})
	data, err := Encode(frames, &EncodeOptions{PortCount: 4})
	assert.Nil(t, data)
	requireValidationError(t, err)
}

func TestEncodeTooManyFrames(t *testing.T) {
	data, err := Encode(make([]Frame, 0x10000), nil)
	assert.Nil(t, data)
	requireValidationError(t, err)
}

func TestEncodeBadGammaLength(t *testing.T) {
	frames := solidFrames(1, 1, 1, RGB{})
	data, err := Encode(frames, &EncodeOptions{Gamma: make([]uint16, 100)})
	assert.Nil(t, data)
	requireValidationError(t, err)
}

func TestEncodeDefaultsInPortTable(t *testing.T) {
	data, err := Encode(solidFrames(2, 5, 1, RGB{}), nil)
	require.NoError(t, err)

	c, err := Decode(data)
	require.NoError(t, err)
	for i, p := range c.Ports {
		assert.Equal(t, uint16(i), p.Index)
		assert.Equal(t, DefaultMode, p.Mode)
		assert.Equal(t, DefaultFlags, p.Flags)
		assert.Equal(t, LoopByteValid, p.LoopByte)
		assert.True(t, p.LoopFlag())
	}
}

func TestEncodeCaptureInconsistent(t *testing.T) {
	data, err := Encode(solidFrames(1, 2, 1, RGB{}), nil)
	require.NoError(t, err)
	c, err := Decode(data)
	require.NoError(t, err)

	// Pixel run no longer matches the port's declared byte length.
	c.Frames[0][0] = c.Frames[0][0][:1]
	out, err := EncodeCapture(c)
	assert.Nil(t, out)
	verr := requireValidationError(t, err)
	assert.Equal(t, 0, verr.Frame)
	assert.Equal(t, 0, verr.Port)
}
