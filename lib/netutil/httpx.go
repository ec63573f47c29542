// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers for groupsync.
//
// ReadResponse bounds response body reads at MaxResponseSize so that a
// misbehaving homeserver cannot make the tool allocate without limit.
// All responses groupsync consumes are small JSON documents; the limit
// is generous enough to never interfere with legitimate traffic.
package netutil

import (
	"io"
)

// MaxResponseSize is the bound on JSON API response body reads: 64 MB.
// A joined_members response for a very large room is the biggest body
// the tool ever reads, and it stays far below this.
const MaxResponseSize int64 = 64 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize
// bytes. Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}
