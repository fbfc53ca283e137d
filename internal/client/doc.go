// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line API client.
//
// [App] maps one command line (e.g. "upload -description notes report.pdf")
// to a single call on an [adapter.ServerAdapter] and prints the result.
package client
