// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package source resolves a source spec (local file, s3:// object, or
// stdin) into the ordered row collection the rest of the tool lays out.
package source
