// Copyright 2025 The RGB0 Capture Project. All rights reserved.
// Use of this source code is governed by the Apache License Version 2.0;
// see the LICENSE file for further details.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	arg "github.com/alexflint/go-arg"

	"github.com/gicolab/rgb0-capture/rgb0"
)

var version = "<not set>"

type Args struct {
	Files []string `arg:"positional,required" help:"capture files to summarize"`
}

func (Args) Version() string {
	return version
}

func main() {
	log.SetFlags(0)
	var args Args
	arg.MustParse(&args)
	if err := runMain(args); err != nil {
		log.Fatal(err)
	}
}

func runMain(args Args) error {
	for i, path := range args.Files {
		if i > 0 {
			fmt.Println()
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			log.Printf("%s missing or not a file, skipping", path)
			continue
		}
		if err := summarize(path); err != nil {
			return err
		}
	}
	return nil
}

func summarize(path string) error {
	c, err := rgb0.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: frame_size=%d bytes, frames=%d\n",
		filepath.Base(path), c.Header.FrameSize, len(c.Frames))
	fmt.Printf("  gamma sample: %v\n", c.Gamma[:4])

	offsets := c.PortOffsets()
	for _, p := range c.Ports {
		fmt.Printf("    Port %d: len=%d, mode=0x%02x, flags=0x%04x, loop=%t, offset=%d\n",
			p.Index, p.ByteLength, p.Mode, p.Flags, p.LoopFlag(), offsets[p.Index])
	}

	if len(c.Frames) > 0 {
		fmt.Printf("  first frame preview (16 bytes): %x\n", framePreview(c.Frames[0], 16))
	}
	return nil
}

// framePreview flattens the leading pixels of a frame back to raw
// channel bytes, up to n bytes.
func framePreview(frame rgb0.Frame, n int) []byte {
	out := make([]byte, 0, n)
	for _, run := range frame {
		for _, px := range run {
			out = append(out, px.R, px.G, px.B)
			if len(out) >= n {
				return out[:n]
			}
		}
	}
	return out
}
