// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws contains AWS SDK v2 helpers used by sources that fetch row
// content from AWS resources.
package aws
