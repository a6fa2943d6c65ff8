// Copyright 2025 The RGB0 Capture Project. All rights reserved.
// Use of this source code is governed by the Apache License Version 2.0;
// see the LICENSE file for further details.

// Package pattern generates synthetic frame sequences for exercising
// RGB0 captures on real controllers.
package pattern

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/gicolab/rgb0-capture/rgb0"
)

// Solid returns frames where every pixel on every port holds c.
func Solid(c rgb0.RGB, ports, leds, frames int) []rgb0.Frame {
	out := make([]rgb0.Frame, frames)
	for fi := range out {
		frame := newFrame(ports, leds)
		for _, run := range frame {
			for i := range run {
				run[i] = c
			}
		}
		out[fi] = frame
	}
	return out
}

// Chase lights a single pixel per port, advancing one position each
// frame and wrapping at the end of the strip.
func Chase(c rgb0.RGB, ports, leds, frames int) []rgb0.Frame {
	out := make([]rgb0.Frame, frames)
	for fi := range out {
		frame := newFrame(ports, leds)
		for _, run := range frame {
			run[fi%leds] = c
		}
		out[fi] = frame
	}
	return out
}

// Sweep renders a linear gradient between the two colours and slides
// it along the strips over the course of the capture. Each frame is
// drawn on a leds x ports canvas and sampled back into per-port pixel
// runs, so all ports show the same blend.
func Sweep(from, to rgb0.RGB, ports, leds, frames int) []rgb0.Frame {
	out := make([]rgb0.Frame, frames)
	for fi := range out {
		shift := float64(fi) / float64(frames) * float64(leds)

		dc := gg.NewContext(leds, ports)
		grad := gg.NewLinearGradient(shift-float64(leds), 0, shift+float64(leds), 0)
		grad.AddColorStop(0, color.NRGBA{R: from.R, G: from.G, B: from.B, A: 255})
		grad.AddColorStop(1, color.NRGBA{R: to.R, G: to.G, B: to.B, A: 255})
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, float64(leds), float64(ports))
		dc.Fill()

		img := dc.Image()
		frame := newFrame(ports, leds)
		for p, run := range frame {
			for x := range run {
				r, g, b, _ := img.At(x, p).RGBA()
				run[x] = rgb0.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			}
		}
		out[fi] = frame
	}
	return out
}

func newFrame(ports, leds int) rgb0.Frame {
	frame := make(rgb0.Frame, ports)
	for i := range frame {
		frame[i] = make([]rgb0.RGB, leds)
	}
	return frame
}
