// Copyright 2025 The RGB0 Capture Project. All rights reserved.
// Use of this source code is governed by the Apache License Version 2.0;
// see the LICENSE file for further details.

// Package rgb0 encodes and decodes RGB0 capture files: fixed-layout
// binary files of per-port pixel frames played back from SD card by
// LED/DMX controllers. Decode and Encode are pure transformations over
// byte buffers; reading and writing paths is left to the thin file
// helpers.
package rgb0

// RGB is a single pixel: three 8-bit channels, no alpha.
type RGB struct {
	R, G, B uint8
}

// Frame is one time-slice of pixels for every port, in ascending port
// order. Each inner slice is one port's pixel run.
type Frame [][]RGB

// Port describes one output channel and its fixed per-frame byte
// allocation.
type Port struct {
	Index      uint16
	ByteLength uint16 // bytes this port contributes to each frame
	Mode       byte
	Flags      uint16
	LoopByte   byte
}

// LEDCount returns the number of pixels the port carries per frame.
func (p Port) LEDCount() int {
	return int(p.ByteLength) / 3
}

// LoopFlag reports whether bit 7 of the loop/control byte is set.
func (p Port) LoopFlag() bool {
	return p.LoopByte&0x80 != 0
}

// Header holds the fixed fields at the start of a capture file.
type Header struct {
	Magic      string
	Version    string
	Sentinel   uint32
	HeaderEnd  uint16 // offset where the gamma table begins
	FrameCount uint16
	FrameSize  uint32 // bytes per frame; always the sum of port lengths
	PortCount  uint16
	Channels   byte
}

// Capture is the full in-memory form of an RGB0 file: header, ordered
// port table, gamma lookup table and frame sequence. It is built once
// by Decode or by the caller and consumed once by EncodeCapture; it is
// never mutated incrementally.
type Capture struct {
	Header Header
	Ports  []Port
	Gamma  []uint16 // 256 entries
	Frames []Frame
}

// PortOffsets returns the byte offset of each port's span within a
// frame, keyed by port index. Offsets follow port table order.
func (c *Capture) PortOffsets() map[uint16]int {
	offsets := make(map[uint16]int, len(c.Ports))
	off := 0
	for _, p := range c.Ports {
		offsets[p.Index] = off
		off += int(p.ByteLength)
	}
	return offsets
}

// PortFrames returns one port's pixel run across every frame, in frame
// order. It returns nil if no port in the table carries the index.
func (c *Capture) PortFrames(index uint16) [][]RGB {
	for pos, p := range c.Ports {
		if p.Index != index {
			continue
		}
		runs := make([][]RGB, len(c.Frames))
		for i, frame := range c.Frames {
			runs[i] = frame[pos]
		}
		return runs
	}
	return nil
}
