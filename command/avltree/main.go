// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/arrayavl/fault"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// logger channel names
const (
	mainLoggerPrefix    = "main"
	treeLoggerPrefix    = "avl"
	watcherLoggerPrefix = "file-watcher"
)

// minimum spacing of reruns in watch mode
const rerunInterval = 500 * time.Millisecond

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
		{Long: "kind", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--version] [--verbose] [--quiet] [--config-file=FILE] [--kind=string|integer] [--watch] command [values...]\n"+
			"commands: %s | %s | %s | %s | %s | %s | %s VALUE... | %s | %s",
			program,
			cmdLayout, cmdPrint, cmdPreOrder, cmdInOrder, cmdPostOrder,
			cmdBreadthFirst, cmdFind, cmdCheck, cmdStats,
		)
	}

	configurationFile := ""
	switch n := len(options["config-file"]); n {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, n)
	}

	watch := len(options["watch"]) > 0
	if watch && "" == configurationFile {
		exitwithstatus.Message("%s: watch: %s", program, fault.ErrRequiredConfigFile)
	}

	// read options and parse the configuration file
	masterConfiguration, err := readConfiguration(configurationFile, options)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New(mainLoggerPrefix)
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	command := arguments[0]
	arguments = arguments[1:]

	err = execute(os.Stdout, masterConfiguration, command, arguments, log)
	if nil != err {
		log.Errorf("command: %s  error: %s", command, err)
		if !watch {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		fmt.Fprintf(os.Stderr, "%s: %s error: %s\n", program, command, err)
	}

	if !watch {
		return
	}

	err = watchConfiguration(os.Stdout, configurationFile, options, command, arguments, log)
	if nil != err {
		exitwithstatus.Message("%s: watch error: %s", program, err)
	}
}

// configuration file then command line overrides
func readConfiguration(configurationFile string, options map[string][]string) (*Configuration, error) {
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		return nil, err
	}

	if kinds := options["kind"]; len(kinds) > 0 {
		switch kind := kinds[len(kinds)-1]; kind {
		case kindString, kindInteger:
			masterConfiguration.Kind = kind
		default:
			return nil, fmt.Errorf("kind: %q: %w", kind, fault.ErrUnknownKind)
		}
	}

	levels := masterConfiguration.Logging.Levels
	if nil == levels {
		levels = make(map[string]string)
		masterConfiguration.Logging.Levels = levels
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
		levels[logger.DefaultTag] = "debug"
	}
	if len(options["quiet"]) > 0 {
		masterConfiguration.Logging.Console = false
		levels[logger.DefaultTag] = "critical"
	}

	return masterConfiguration, nil
}

// rerun the command each time the configuration file changes, until
// the file is removed or a termination signal arrives
func watchConfiguration(w io.Writer, configurationFile string, options map[string][]string, command string, arguments []string, log *logger.L) error {

	channel := newWatcherChannel()
	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix), channel)
	if nil != err {
		return err
	}
	defer watcher.Close()

	if err := watcher.Start(); nil != err {
		return err
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	log.Infof("watching: %q", configurationFile)

	limiter := rate.NewLimiter(rate.Every(rerunInterval), 1)

	for {
		select {
		case <-channel.change:
			if err := throttle(limiter); nil != err {
				log.Warnf("rerun skipped: %s", err)
				continue
			}

			// a change signalled while waiting is covered by this run
			drain(channel.change)

			log.Info("configuration changed, rerun")
			if err := rerun(w, configurationFile, options, command, arguments, log); nil != err {
				log.Errorf("rerun error: %s", err)
				fmt.Fprintf(os.Stderr, "%s error: %s\n", command, err)
			}

		case <-channel.remove:
			log.Warnf("configuration: %q removed", configurationFile)
			return nil

		case s := <-ch:
			log.Infof("received signal: %v", s)
			return nil
		}
	}
}

// reread the configuration and execute, logging settings are not
// reapplied as the logger is already running
func rerun(w io.Writer, configurationFile string, options map[string][]string, command string, arguments []string, log *logger.L) error {
	masterConfiguration, err := readConfiguration(configurationFile, options)
	if nil != err {
		return err
	}
	return execute(w, masterConfiguration, command, arguments, log)
}
