// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

func assert(expr bool, ifFalse func()) {
	if !expr {
		ifFalse()
	}
}
