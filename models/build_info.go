// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// unknownBuildValue stands in for build fields not stamped through -ldflags.
const unknownBuildValue = "N/A"

// BuildInfo identifies a server binary. It is printed on start, attached
// to the startup log line, and its Version backs GET /api/version when
// APP_VERSION is not configured.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills every empty field with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// WriteTo prints the three-line startup banner.
func (b BuildInfo) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
	return int64(n), err
}

func (b BuildInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", b.Version).
		Str("date", b.Date).
		Str("commit", b.Commit)
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}
	return s
}
