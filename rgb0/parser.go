// Copyright 2025 The RGB0 Capture Project. All rights reserved.
// Use of this source code is governed by the Apache License Version 2.0;
// see the LICENSE file for further details.

package rgb0

import (
	"encoding/binary"
	"fmt"
)

// Decode parses a complete RGB0 capture from data. Any structural
// inconsistency aborts the whole decode and returns a *FormatError;
// a partial capture is never returned.
//
// Port table order is authoritative: ports are kept in file order and
// each frame is split across them in that order. The loop/control byte
// is not validated, only preserved.
func Decode(data []byte) (*Capture, error) {
	d := &decoder{buf: data}

	header, err := d.header()
	if err != nil {
		return nil, err
	}
	if len(data) < int(header.HeaderEnd) {
		return nil, &FormatError{
			Offset: len(data),
			Field:  "header-end",
			Reason: fmt.Sprintf("buffer of %d bytes shorter than declared header end %d", len(data), header.HeaderEnd),
		}
	}

	ports, err := d.portTable(int(header.PortCount))
	if err != nil {
		return nil, err
	}

	total := 0
	for i, p := range ports {
		if p.ByteLength%3 != 0 {
			return nil, &FormatError{
				Offset: headerPrefixSize + i*portEntrySize,
				Field:  "byte-length",
				Reason: fmt.Sprintf("port %d length %d is not a multiple of 3", p.Index, p.ByteLength),
			}
		}
		total += int(p.ByteLength)
	}
	if uint32(total) != header.FrameSize {
		return nil, &FormatError{
			Offset: 0x10,
			Field:  "frame-size",
			Reason: fmt.Sprintf("declared frame size %d but port lengths sum to %d", header.FrameSize, total),
		}
	}

	need := headerPrefixSize + int(header.PortCount)*portEntrySize + gammaSize +
		int(header.FrameCount)*int(header.FrameSize)
	if len(data) < need {
		return nil, &FormatError{
			Offset: len(data),
			Reason: fmt.Sprintf("buffer of %d bytes truncated; capture needs %d", len(data), need),
		}
	}

	gamma, err := d.gammaTable()
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, header.FrameCount)
	for i := range frames {
		raw, err := d.readN(int(header.FrameSize), "frame")
		if err != nil {
			return nil, err
		}
		frames[i] = splitFrame(raw, ports)
	}

	return &Capture{
		Header: header,
		Ports:  ports,
		Gamma:  gamma,
		Frames: frames,
	}, nil
}

// decoder is a cursor over the raw capture bytes.
type decoder struct {
	buf []byte
	off int
}

func (d *decoder) header() (Header, error) {
	var h Header

	magic, err := d.readN(4, "magic")
	if err != nil {
		return h, err
	}
	if string(magic) != Magic {
		return h, &FormatError{
			Offset: 0,
			Field:  "magic",
			Reason: fmt.Sprintf("not an RGB0 capture (magic %q)", magic),
		}
	}
	h.Magic = string(magic)

	version, err := d.readN(4, "version")
	if err != nil {
		return h, err
	}
	if string(version) != Version {
		return h, &FormatError{
			Offset: 4,
			Field:  "version",
			Reason: fmt.Sprintf("unsupported version %q", version),
		}
	}
	h.Version = string(version)

	if h.Sentinel, err = d.uint32("sentinel"); err != nil {
		return h, err
	}
	if h.HeaderEnd, err = d.uint16("header-end"); err != nil {
		return h, err
	}
	if h.FrameCount, err = d.uint16("frame-count"); err != nil {
		return h, err
	}
	if h.FrameSize, err = d.uint32("frame-size"); err != nil {
		return h, err
	}
	if h.PortCount, err = d.uint16("port-count"); err != nil {
		return h, err
	}
	if h.Channels, err = d.readByte("channels"); err != nil {
		return h, err
	}
	return h, nil
}

func (d *decoder) portTable(count int) ([]Port, error) {
	ports := make([]Port, count)
	for i := range ports {
		entry, err := d.readN(portEntrySize, "port-table")
		if err != nil {
			return nil, err
		}
		ports[i] = Port{
			Index:      binary.BigEndian.Uint16(entry[0:2]),
			ByteLength: binary.BigEndian.Uint16(entry[2:4]),
			// entry[4:8] reserved
			Mode:     entry[8],
			Flags:    binary.BigEndian.Uint16(entry[9:11]),
			LoopByte: entry[11],
			// entry[12] reserved
		}
	}
	return ports, nil
}

func (d *decoder) gammaTable() ([]uint16, error) {
	raw, err := d.readN(gammaSize, "gamma")
	if err != nil {
		return nil, err
	}
	lut := make([]uint16, gammaEntries)
	for i := range lut {
		lut[i] = binary.BigEndian.Uint16(raw[i*2:])
	}
	return lut, nil
}

// splitFrame cuts one frame's raw bytes into per-port pixel runs. The
// caller has already checked raw covers every port's span and that
// each span divides into whole triplets.
func splitFrame(raw []byte, ports []Port) Frame {
	frame := make(Frame, len(ports))
	off := 0
	for i, p := range ports {
		span := raw[off : off+int(p.ByteLength)]
		pixels := make([]RGB, len(span)/3)
		for j := range pixels {
			pixels[j] = RGB{R: span[j*3], G: span[j*3+1], B: span[j*3+2]}
		}
		frame[i] = pixels
		off += int(p.ByteLength)
	}
	return frame
}

func (d *decoder) readN(n int, field string) ([]byte, error) {
	if d.off+n > len(d.buf) {
		return nil, &FormatError{
			Offset: d.off,
			Field:  field,
			Reason: "unexpected end of buffer",
		}
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) readByte(field string) (byte, error) {
	b, err := d.readN(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) uint16(field string) (uint16, error) {
	b, err := d.readN(2, field)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (d *decoder) uint32(field string) (uint32, error) {
	b, err := d.readN(4, field)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
