// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/treemap"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "input", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'i'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config=FILE] [--input=FILE]", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	verbose := len(options["verbose"]) > 0

	configFile := ""
	if len(options["config"]) > 0 {
		configFile = options["config"][0]
	}

	conf, err := getConfiguration(configFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configFile, err)
	}

	// start logging
	if err := os.MkdirAll(conf.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: cannot create log directory: %q  error: %s", program, conf.Logging.Directory, err)
	}
	if err = logger.Initialise(conf.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("starting…  version: %s", version)

	input := io.Reader(os.Stdin)
	if len(options["input"]) > 0 {
		f, err := os.Open(options["input"][0])
		if nil != err {
			exitwithstatus.Message("%s: cannot open input: %s", program, err)
		}
		defer f.Close()
		input = f
	}

	values, err := readValues(input)
	if nil != err {
		log.Errorf("read values error: %s", err)
		exitwithstatus.Message("%s: read values error: %s", program, err)
	}

	m := treemap.New[int]()
	m.SetLog(logger.New("treemap"))
	if err := load(m, values); nil != err {
		log.Errorf("load error: %s", err)
		exitwithstatus.Message("%s: load error: %s", program, err)
	}
	log.Infof("loaded: %d values  height: %d", m.Len(), m.TreeHeight())

	if conf.Check && !(m.CheckUp() && m.CheckOrder()) {
		fault.Criticalf("inconsistent tree  count: %d  height: %d", m.Len(), m.TreeHeight())
		exitwithstatus.Message("%s: inconsistent tree", program)
	}

	if verbose {
		m.Print(os.Stdout)
	}

	if err := printTraversals(os.Stdout, m, conf.Traversals, conf.Separator); nil != err {
		exitwithstatus.Message("%s: output error: %s", program, err)
	}
	log.Info("finished")
}
