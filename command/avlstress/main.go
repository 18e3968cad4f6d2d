// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if len(options["config-file"]) != 1 {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if err != nil {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if verbose {
		theConfiguration.Logging.Levels["run"] = "debug"
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); err != nil {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	store, err := OpenResults(theConfiguration.Database)
	if err != nil {
		log.Criticalf("results database: %q  error: %s", theConfiguration.Database, err)
		exitwithstatus.Message("%s: failed to open results database: %q  error: %s", program, theConfiguration.Database, err)
	}
	defer store.Close()

	var ops Tally
	start := time.Now()
	results := executeAll(logger.New("run"), theConfiguration.Runs, NewKeySource, &ops)
	elapsed := time.Since(start)

	failed := 0
	for i, r := range results {
		if nil == r.Err {
			seen, err := store.Record(theConfiguration.Runs[i], r.Digest)
			if nil != err {
				r.Err = err
			} else if seen {
				log.Debugf("run: %s  digest matches earlier run", r.Name)
			}
		}
		if nil != r.Err {
			failed += 1
			log.Errorf("run: %s  error: %s", r.Name, r.Err)
			if !quiet {
				fmt.Printf("%s: FAIL: %s\n", r.Name, r.Err)
			}
			continue
		}
		log.Infof("run: %s  added: %d  removed: %d  size: %d  height: %d  digest: %s", r.Name, r.Added, r.Removed, r.Size, r.Height, r.Digest)
		if !quiet {
			fmt.Printf("%s: ok  added: %d  removed: %d  size: %d  height: %d/%d\n", r.Name, r.Added, r.Removed, r.Size, r.Height, maxHeight(r.Size))
			if verbose {
				fmt.Printf("%s: digest: %s\n", r.Name, r.Digest)
			}
		}
	}

	log.Infof("runs: %d  failed: %d  operations: %d  elapsed: %s", len(results), failed, ops.Uint64(), elapsed)
	if !quiet {
		fmt.Printf("runs: %d  failed: %d  operations: %d  elapsed: %s\n", len(results), failed, ops.Uint64(), elapsed)
	}

	if failed > 0 {
		exitwithstatus.Exit(1)
	}
}
