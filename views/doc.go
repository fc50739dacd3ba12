// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views holds the embedded HTML templates and renders them.
//
//	err := views.Render(w, views.Students, students)
//
// Templates get score (two decimals), comma and ordinal from go-humanize,
// and inc for 1-based ranks.
package views
