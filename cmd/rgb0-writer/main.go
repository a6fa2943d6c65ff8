// Copyright 2025 The RGB0 Capture Project. All rights reserved.
// Use of this source code is governed by the Apache License Version 2.0;
// see the LICENSE file for further details.

package main

import (
	"log"

	arg "github.com/alexflint/go-arg"

	"github.com/gicolab/rgb0-capture/pattern"
	"github.com/gicolab/rgb0-capture/rgb0"
)

var version = "<not set>"

type Args struct {
	ConfigFile string `arg:"-c,--config" help:"path to configuration file"`
	OutputDir  string `arg:"-o,--output" help:"override the configured output directory"`
	Run        int    `arg:"--run" help:"override the configured run number"`
	Timestamps bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	var args Args
	args.ConfigFile = "/etc/rgb0-writer.yaml"
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}
	if args.OutputDir != "" {
		conf.OutputDir = args.OutputDir
	}
	if args.Run > 0 {
		conf.RunNumber = args.Run
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	logConfig(conf)

	opts := &rgb0.EncodeOptions{
		PortCount: conf.PortCount,
		Mode:      conf.Mode,
		Flags:     conf.Flags,
		LoopByte:  conf.LoopByte,
	}
	if conf.GammaExponent > 0 {
		opts.Gamma = rgb0.GammaCurve(conf.GammaExponent)
	}

	path, err := rgb0.WriteFile(conf.OutputDir, conf.RunNumber, makeFrames(conf), opts)
	if err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}

func makeFrames(conf *Config) []rgb0.Frame {
	switch conf.Pattern {
	case "chase":
		return pattern.Chase(conf.Color, conf.PortCount, conf.LEDsPerPort, conf.FrameCount)
	case "sweep":
		return pattern.Sweep(rgb0.RGB{}, conf.Color, conf.PortCount, conf.LEDsPerPort, conf.FrameCount)
	default:
		return pattern.Solid(conf.Color, conf.PortCount, conf.LEDsPerPort, conf.FrameCount)
	}
}

func logConfig(conf *Config) {
	log.Printf("running version: %s", version)
	log.Printf("output dir: %s", conf.OutputDir)
	log.Printf("topology: %d ports x %d LEDs", conf.PortCount, conf.LEDsPerPort)
	log.Printf("pattern: %s, %d frames", conf.Pattern, conf.FrameCount)
}
