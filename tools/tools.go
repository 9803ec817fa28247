// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tools

// Package tools pins the development tools used by this module.
//
// The license header on every Go file is maintained with:
//
//	go run github.com/google/addlicense -c AUTHORS -l bsd -y 2025 .
package tools

import (
	_ "github.com/google/addlicense"
)
