// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report prints the dashboard statistics as terminal tables for
// the report command.
package report
