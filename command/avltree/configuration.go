// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/arrayavl/configuration"
	"github.com/bitmark-inc/arrayavl/fault"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the
// directory holding the configuration file)
const (
	defaultKind = kindString

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// a fresh map each time as the parser and command line flags both
// write into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "info",
	}
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Kind    string               `gluamapper:"kind" json:"kind"`
	Values  []string             `gluamapper:"values" json:"values"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with logging under the system
// temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		Kind:   defaultKind,
		Values: []string{},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	baseDirectory := filepath.Join(os.TempDir(), "avltree")

	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the directory of the configuration file
		baseDirectory, _ = filepath.Split(fileName)

		variables := map[string]string{
			"config_directory": baseDirectory,
		}
		if err := configuration.ParseConfigurationFile(fileName, options, variables); err != nil {
			return nil, err
		}
	}

	options.Kind = strings.ToLower(options.Kind)
	switch options.Kind {
	case kindString, kindInteger:
	default:
		return nil, fmt.Errorf("kind: %q: %w", options.Kind, fault.ErrUnknownKind)
	}

	// the log file must be a simple name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("log file: %q is not plain name: %w", options.Logging.File, fault.ErrInvalidValue)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(baseDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
