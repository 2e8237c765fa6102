// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package tui implements the interactive viewer behind the view command: a
// bubbletea program that scrolls a virtualized list with a status bar and
// proportional scrollbar.
package tui
