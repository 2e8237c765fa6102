// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version carries the build version, set via -ldflags at release.
package version

// Version is the vlctl release version.
var Version = "dev"
