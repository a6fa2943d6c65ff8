package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gicolab/rgb0-capture/rgb0"
)

func requireShape(t *testing.T, frames []rgb0.Frame, ports, leds, count int) {
	require.Len(t, frames, count)
	for _, frame := range frames {
		require.Len(t, frame, ports)
		for _, run := range frame {
			require.Len(t, run, leds)
		}
	}
}

func TestSolid(t *testing.T) {
	c := rgb0.RGB{R: 1, G: 2, B: 3}
	frames := Solid(c, 4, 6, 3)
	requireShape(t, frames, 4, 6, 3)
	for _, frame := range frames {
		for _, run := range frame {
			for _, px := range run {
				assert.Equal(t, c, px)
			}
		}
	}
}

func TestChase(t *testing.T) {
	c := rgb0.RGB{R: 255}
	frames := Chase(c, 2, 5, 7)
	requireShape(t, frames, 2, 5, 7)
	for fi, frame := range frames {
		for _, run := range frame {
			for i, px := range run {
				if i == fi%5 {
					assert.Equal(t, c, px)
				} else {
					assert.Equal(t, rgb0.RGB{}, px)
				}
			}
		}
	}
}

func TestSweepShape(t *testing.T) {
	frames := Sweep(rgb0.RGB{}, rgb0.RGB{R: 255}, 3, 8, 4)
	requireShape(t, frames, 3, 8, 4)
}

func TestSweepUniformWhenEndsMatch(t *testing.T) {
	c := rgb0.RGB{R: 10, G: 200, B: 30}
	frames := Sweep(c, c, 2, 4, 2)
	for _, frame := range frames {
		for _, run := range frame {
			for _, px := range run {
				assert.Equal(t, c, px)
			}
		}
	}
}

func TestSweepEncodes(t *testing.T) {
	frames := Sweep(rgb0.RGB{B: 255}, rgb0.RGB{R: 255}, 2, 10, 5)
	data, err := rgb0.Encode(frames, nil)
	require.NoError(t, err)

	decoded, err := rgb0.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, frames, decoded.Frames)
}
