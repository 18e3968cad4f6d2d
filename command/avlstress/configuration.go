// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultModulus = 10000 // keys are taken modulo this to force duplicates

	defaultDatabase = "avlstress.leveldb" // digests of seeded runs

	defaultLogDirectory = "log"
	defaultLogFile      = "avlstress.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"run":             "info",
		logger.DefaultTag: "critical",
	}
)

// RunType - one randomised insert/delete run
type RunType struct {
	Name    string `gluamapper:"name" json:"name"`
	Seed    int64  `gluamapper:"seed" json:"seed"` // zero selects crypto/rand
	Total   int    `gluamapper:"total" json:"total"`
	Delete  int    `gluamapper:"delete" json:"delete"`
	Modulus uint32 `gluamapper:"modulus" json:"modulus"`
}

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      string               `gluamapper:"database" json:"database"`
	Runs          []RunType            `gluamapper:"runs" json:"runs"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if err != nil {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Database:      defaultDatabase,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if options.DataDirectory == "" || options.DataDirectory == "~" {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if options.DataDirectory == "." {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); err != nil {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if err := validateRuns(options.Runs); err != nil {
		return nil, err
	}

	options.Database = ensureAbsolute(options.DataDirectory, options.Database)

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); err != nil {
			return nil, err
		}
	}

	// done
	return options, nil
}

// check run sizes and fill in defaults
func validateRuns(runs []RunType) error {
	if 0 == len(runs) {
		return fault.ErrNoRuns
	}
	for i := range runs {
		r := &runs[i]
		if "" == r.Name {
			r.Name = fmt.Sprintf("run-%d", i+1)
		}
		if r.Total < 0 || r.Delete < 0 || r.Delete > r.Total {
			return fmt.Errorf("run: %q total: %d delete: %d: %w", r.Name, r.Total, r.Delete, fault.ErrInvalidCount)
		}
		if 0 == r.Modulus {
			r.Modulus = defaultModulus
		}
	}
	return nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
