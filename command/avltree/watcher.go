// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/arrayavl/fault"
	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// watcherChannel - signals from the watcher, both are buffered with
// a capacity of one so that bursts of events collapse
type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() watcherChannel {
	return watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// fileWatcher - follow one configuration file
type fileWatcher struct {
	log      *logger.L
	channel  watcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channel watcherChannel) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file: %q: %w", filePath, fault.ErrWatcherFileMissing)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channel:  channel,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - begin delivering events, the goroutine ends when the file
// is removed or the watcher is closed
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warnf("watcher error: %s", err)

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Debugf("file event: %v", event)

				if filepath.Base(event.Name) != filepath.Base(w.filePath) {
					w.log.Debugf("event: %q not for: %q, discard", event.Name, w.filePath)
					continue
				}

				if isRemoveEvent(event) {
					w.log.Warnf("file: %q removed, stop", w.filePath)
					sendEvent(w.log, w.channel.remove, "remove")
					return
				}

				if isChangeEvent(event) {
					w.log.Info("sending change event")
					sendEvent(w.log, w.channel.change, "change")
				}
			}
		}
	}()

	return nil
}

// Close - stop watching
func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

// non-blocking send, a full channel already has a pending signal
func sendEvent(log *logger.L, ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		log.Debugf("event channel: %s full, discard event", name)
	}
}

func isRemoveEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChangeEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}

// discard a pending signal
func drain(ch <-chan struct{}) {
	select {
	case <-ch:
	default:
	}
}

// wait for the limiter to allow one more event
func throttle(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
