// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances for the tree, its checker and the
// command line tool
//
// each error is a single typed string value so callers compare
// with == or errors.Is, the type gives the class of the error
package fault
