// Copyright 2025 The RGB0 Capture Project. All rights reserved.
// Use of this source code is governed by the Apache License Version 2.0;
// see the LICENSE file for further details.

package rgb0

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// EncodeOptions adjusts the fixed fields the encoder writes into the
// header and port table. The zero value selects the known-good values
// observed in working captures.
type EncodeOptions struct {
	// PortCount is the number of ports the capture declares. Zero
	// means "as many ports as each frame supplies".
	PortCount int

	Mode     byte   // zero means DefaultMode
	Flags    uint16 // zero means DefaultFlags
	LoopByte byte   // zero means LoopByteValid

	// Gamma is the 256-entry lookup table to store. Nil means the
	// identity curve.
	Gamma []uint16
}

// Encode serializes frames into a complete RGB0 capture buffer. Every
// frame must supply the same number of ports and every port the same
// pixel count across all frames; anything ragged returns a
// *ValidationError. The caller is responsible for persisting the
// returned bytes.
func Encode(frames []Frame, opts *EncodeOptions) ([]byte, error) {
	var o EncodeOptions
	if opts != nil {
		o = *opts
	}
	if o.Mode == 0 {
		o.Mode = DefaultMode
	}
	if o.Flags == 0 {
		o.Flags = DefaultFlags
	}
	if o.LoopByte == 0 {
		o.LoopByte = LoopByteValid
	}

	if len(frames) == 0 {
		return nil, &ValidationError{Frame: -1, Port: -1, Reason: "no frames supplied"}
	}
	if len(frames) > 0xFFFF {
		return nil, &ValidationError{
			Frame: -1, Port: -1,
			Reason: fmt.Sprintf("frame count %d exceeds the 16-bit frame count field", len(frames)),
		}
	}

	portCount := o.PortCount
	if portCount == 0 {
		portCount = len(frames[0])
	}
	if portCount < 1 || portCount > 0xFFFF {
		return nil, &ValidationError{
			Frame: -1, Port: -1,
			Reason: fmt.Sprintf("port count %d out of range 1 - 65535", portCount),
		}
	}

	pixels, err := portPixelCounts(frames, portCount)
	if err != nil {
		return nil, err
	}

	gamma := o.Gamma
	if gamma == nil {
		gamma = IdentityGamma()
	} else if len(gamma) != gammaEntries {
		return nil, &ValidationError{
			Frame: -1, Port: -1,
			Reason: fmt.Sprintf("gamma table has %d entries; expected %d", len(gamma), gammaEntries),
		}
	}

	frameSize := 0
	for _, n := range pixels {
		frameSize += n * 3
	}

	buf := new(bytes.Buffer)
	writeHeader(buf, Header{
		Magic:      Magic,
		Version:    Version,
		Sentinel:   Sentinel,
		HeaderEnd:  uint16(headerPrefixSize + portCount*portEntrySize),
		FrameCount: uint16(len(frames)),
		FrameSize:  uint32(frameSize),
		PortCount:  uint16(portCount),
		Channels:   channelCount,
	})
	for i := 0; i < portCount; i++ {
		writePort(buf, Port{
			Index:      uint16(i),
			ByteLength: uint16(pixels[i] * 3),
			Mode:       o.Mode,
			Flags:      o.Flags,
			LoopByte:   o.LoopByte,
		})
	}
	writeGamma(buf, gamma)
	for _, frame := range frames {
		writeFrame(buf, frame)
	}
	return buf.Bytes(), nil
}

// EncodeCapture re-serializes a capture exactly as stored: the header
// fields, port table (including any non-default mode, flags and loop
// bytes) and gamma table are written verbatim. Decoding a buffer and
// re-encoding the result reproduces it byte for byte.
func EncodeCapture(c *Capture) ([]byte, error) {
	if len(c.Header.Magic) != 4 || len(c.Header.Version) != 4 {
		return nil, &ValidationError{
			Frame: -1, Port: -1,
			Reason: "header magic and version must each be 4 bytes",
		}
	}
	if int(c.Header.PortCount) != len(c.Ports) {
		return nil, &ValidationError{
			Frame: -1, Port: -1,
			Reason: fmt.Sprintf("header declares %d ports but table has %d", c.Header.PortCount, len(c.Ports)),
		}
	}
	if int(c.Header.FrameCount) != len(c.Frames) {
		return nil, &ValidationError{
			Frame: -1, Port: -1,
			Reason: fmt.Sprintf("header declares %d frames but capture has %d", c.Header.FrameCount, len(c.Frames)),
		}
	}
	if len(c.Gamma) != gammaEntries {
		return nil, &ValidationError{
			Frame: -1, Port: -1,
			Reason: fmt.Sprintf("gamma table has %d entries; expected %d", len(c.Gamma), gammaEntries),
		}
	}
	for fi, frame := range c.Frames {
		if len(frame) != len(c.Ports) {
			return nil, &ValidationError{
				Frame: fi, Port: -1,
				Reason: fmt.Sprintf("has %d ports; expected %d", len(frame), len(c.Ports)),
			}
		}
		for pi, run := range frame {
			if len(run)*3 != int(c.Ports[pi].ByteLength) {
				return nil, &ValidationError{
					Frame: fi, Port: pi,
					Reason: fmt.Sprintf("has %d pixels; port declares %d bytes", len(run), c.Ports[pi].ByteLength),
				}
			}
		}
	}

	buf := new(bytes.Buffer)
	writeHeader(buf, c.Header)
	for _, p := range c.Ports {
		writePort(buf, p)
	}
	writeGamma(buf, c.Gamma)
	for _, frame := range c.Frames {
		writeFrame(buf, frame)
	}
	return buf.Bytes(), nil
}

// portPixelCounts takes the pixel count of each port from the first
// frame and checks every other frame agrees with it.
func portPixelCounts(frames []Frame, portCount int) ([]int, error) {
	pixels := make([]int, portCount)
	for fi, frame := range frames {
		if len(frame) != portCount {
			return nil, &ValidationError{
				Frame: fi, Port: -1,
				Reason: fmt.Sprintf("has %d ports; expected %d", len(frame), portCount),
			}
		}
		for pi, run := range frame {
			if fi == 0 {
				if len(run)*3 > 0xFFFF {
					return nil, &ValidationError{
						Frame: fi, Port: pi,
						Reason: fmt.Sprintf("%d pixels exceed the 16-bit port length field", len(run)),
					}
				}
				pixels[pi] = len(run)
			} else if len(run) != pixels[pi] {
				return nil, &ValidationError{
					Frame: fi, Port: pi,
					Reason: fmt.Sprintf("has %d pixels; expected %d", len(run), pixels[pi]),
				}
			}
		}
	}
	return pixels, nil
}

func writeHeader(buf *bytes.Buffer, h Header) {
	buf.WriteString(h.Magic)
	buf.WriteString(h.Version)
	be32(buf, h.Sentinel)
	be16(buf, h.HeaderEnd)
	be16(buf, h.FrameCount)
	be32(buf, h.FrameSize)
	be16(buf, h.PortCount)
	buf.WriteByte(h.Channels)
}

func writePort(buf *bytes.Buffer, p Port) {
	be16(buf, p.Index)
	be16(buf, p.ByteLength)
	be32(buf, 0) // reserved
	buf.WriteByte(p.Mode)
	be16(buf, p.Flags)
	buf.WriteByte(p.LoopByte)
	buf.WriteByte(0) // reserved
}

func writeGamma(buf *bytes.Buffer, lut []uint16) {
	for _, v := range lut {
		be16(buf, v)
	}
}

// writeFrame flattens one frame to raw channel bytes, port runs
// concatenated in table order with no separators.
func writeFrame(buf *bytes.Buffer, frame Frame) {
	for _, run := range frame {
		for _, px := range run {
			buf.Write([]byte{px.R, px.G, px.B})
		}
	}
}

func be16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func be32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
