// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	ErrCapacityMismatch   = InvalidError("capacity does not match height")
	ErrCapacityViolation  = ProcessError("slot index beyond addressable capacity")
	ErrHeightMismatch     = InvalidError("recorded height does not match subtree")
	ErrInvalidValue       = InvalidError("value cannot be parsed")
	ErrMissingArgument    = InvalidError("missing argument")
	ErrNotFound           = NotFoundError("value not found")
	ErrOrderViolation     = InvalidError("value out of search order")
	ErrOrphanNode         = InvalidError("occupied slot has an empty parent")
	ErrRateLimiting       = ProcessError("rate limiting")
	ErrRequiredConfigFile = InvalidError("configuration file is required")
	ErrUnbalanced         = InvalidError("subtree heights differ by more than one")
	ErrUnknownCommand     = InvalidError("unknown command")
	ErrUnknownKind        = InvalidError("unknown value kind")
	ErrWatcherFileMissing = NotFoundError("watched file does not exist")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrInvalid - determine the class of an error, wrapped errors
// are unwrapped until a class is found
func IsErrInvalid(e error) bool {
	var target InvalidError
	return errors.As(e, &target)
}

// IsErrNotFound - true for any NotFoundError
func IsErrNotFound(e error) bool {
	var target NotFoundError
	return errors.As(e, &target)
}

// IsErrProcess - true for any ProcessError
func IsErrProcess(e error) bool {
	var target ProcessError
	return errors.As(e, &target)
}
