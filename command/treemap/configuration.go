// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treemap/configuration"
	"github.com/bitmark-inc/treemap/fault"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultSeparator = " "

	defaultLogDirectory = "log"
	defaultLogFile      = "treemap.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// names accepted in the traversals list
const (
	preorderName  = "preorder"
	inorderName   = "inorder"
	postorderName = "postorder"
)

var defaultTraversals = []string{preorderName, inorderName, postorderName}

// Configuration - the items read from the configuration file
type Configuration struct {
	Separator  string               `gluamapper:"separator" json:"separator"`
	Traversals []string             `gluamapper:"traversals" json:"traversals"`
	Check      bool                 `gluamapper:"check" json:"check"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with logs in the temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		Separator: defaultSeparator,
		Check:     false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if "" == configurationFileName {
		options.Traversals = slices.Clone(defaultTraversals)
		options.Logging.Directory = filepath.Join(os.TempDir(), "treemap-"+defaultLogDirectory)
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// relative log directory is next to the configuration file
	if !filepath.IsAbs(options.Logging.Directory) {
		dataDirectory, _ := filepath.Split(configurationFileName)
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	// a list in the file replaces the default list rather than overlaying it
	if 0 == len(options.Traversals) {
		options.Traversals = slices.Clone(defaultTraversals)
	}
	for _, name := range options.Traversals {
		switch name {
		case preorderName, inorderName, postorderName:
		default:
			return nil, fault.InvalidError("unknown traversal: " + name)
		}
	}

	return options, nil
}
