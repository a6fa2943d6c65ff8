// Copyright 2025 The RGB0 Capture Project. All rights reserved.
// Use of this source code is governed by the Apache License Version 2.0;
// see the LICENSE file for further details.

package main

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/gicolab/rgb0-capture/rgb0"
)

type Config struct {
	OutputDir     string
	RunNumber     int
	PortCount     int
	LEDsPerPort   int
	FrameCount    int
	Pattern       string
	Color         rgb0.RGB
	LoopByte      byte
	Mode          byte
	Flags         uint16
	GammaExponent float64
}

func (conf *Config) Validate() error {
	if conf.PortCount < 1 || conf.PortCount > 0xFFFF {
		return errors.New("port-count should be in range 1 - 65535")
	}
	if conf.LEDsPerPort < 1 || conf.LEDsPerPort*3 > 0xFFFF {
		return errors.New("leds-per-port should be in range 1 - 21845")
	}
	if conf.FrameCount < 1 || conf.FrameCount > 0xFFFF {
		return errors.New("frame-count should be in range 1 - 65535")
	}
	if conf.RunNumber < 1 || conf.RunNumber > 99 {
		return errors.New("run-number should be in range 1 - 99")
	}
	switch conf.Pattern {
	case "solid", "chase", "sweep":
	default:
		return fmt.Errorf("unknown pattern %q", conf.Pattern)
	}
	if conf.GammaExponent < 0 {
		return errors.New("gamma-exponent should not be negative")
	}
	return nil
}

type rawConfig struct {
	OutputDir     string  `yaml:"output-dir"`
	RunNumber     int     `yaml:"run-number"`
	PortCount     int     `yaml:"port-count"`
	LEDsPerPort   int     `yaml:"leds-per-port"`
	FrameCount    int     `yaml:"frame-count"`
	Pattern       string  `yaml:"pattern"`
	Color         []int   `yaml:"color"`
	LoopByte      int     `yaml:"loop-byte"`
	Mode          int     `yaml:"mode"`
	Flags         int     `yaml:"flags"`
	GammaExponent float64 `yaml:"gamma-exponent"`
}

var defaultConfig = rawConfig{
	OutputDir:   "/var/spool/rgb0",
	RunNumber:   1,
	PortCount:   rgb0.DefaultPortCount,
	LEDsPerPort: rgb0.DefaultLEDsPerPort,
	FrameCount:  60,
	Pattern:     "solid",
	Color:       []int{255, 255, 255},
	LoopByte:    int(rgb0.LoopByteValid),
	Mode:        int(rgb0.DefaultMode),
	Flags:       int(rgb0.DefaultFlags),
}

func ParseConfigFile(filename string) (*Config, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (*Config, error) {
	raw := defaultConfig
	if err := yaml.Unmarshal(buf, &raw); err != nil {
		return nil, err
	}

	if len(raw.Color) != 3 {
		return nil, fmt.Errorf("color should have 3 components, not %d", len(raw.Color))
	}
	for _, c := range raw.Color {
		if c < 0 || c > 255 {
			return nil, errors.New("color components should be in range 0 - 255")
		}
	}
	if raw.LoopByte < 0 || raw.LoopByte > 0xFF {
		return nil, errors.New("loop-byte should be in range 0 - 255")
	}
	if raw.Mode < 0 || raw.Mode > 0xFF {
		return nil, errors.New("mode should be in range 0 - 255")
	}
	if raw.Flags < 0 || raw.Flags > 0xFFFF {
		return nil, errors.New("flags should be in range 0 - 65535")
	}

	return &Config{
		OutputDir:   raw.OutputDir,
		RunNumber:   raw.RunNumber,
		PortCount:   raw.PortCount,
		LEDsPerPort: raw.LEDsPerPort,
		FrameCount:  raw.FrameCount,
		Pattern:     raw.Pattern,
		Color: rgb0.RGB{
			R: uint8(raw.Color[0]),
			G: uint8(raw.Color[1]),
			B: uint8(raw.Color[2]),
		},
		LoopByte:      byte(raw.LoopByte),
		Mode:          byte(raw.Mode),
		Flags:         uint16(raw.Flags),
		GammaExponent: raw.GammaExponent,
	}, nil
}
