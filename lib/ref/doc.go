// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides validated identifier value types for the Matrix
// entities groupsync works with: rooms, room aliases, users, and groups.
//
// Identifiers arrive from two places — the command line and homeserver
// API responses — and are parsed into these types at that boundary.
// Past the boundary, code passes the value types around and never
// re-validates. Each type is immutable; the zero value is not valid
// and is detectable with IsZero.
package ref
