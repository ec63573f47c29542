// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "fmt"

// GroupID is a validated Matrix group (community) ID
// (e.g., "+staff:example.org").
//
// Groups are the federated aggregation objects whose membership is
// reconciled against a room. Group IDs use the '+' sigil and otherwise
// follow the same localpart:server structure as the other Matrix
// identifiers.
type GroupID struct {
	id string
}

// ParseGroupID validates and wraps a raw Matrix group ID string.
func ParseGroupID(raw string) (GroupID, error) {
	if _, _, err := parseSigilID(raw, '+', "group ID"); err != nil {
		return GroupID{}, err
	}
	return GroupID{id: raw}, nil
}

// String returns the full group ID string.
func (g GroupID) String() string { return g.id }

// IsZero reports whether the GroupID is the zero value (uninitialized).
func (g GroupID) IsZero() bool { return g.id == "" }

// MarshalText implements encoding.TextMarshaler.
func (g GroupID) MarshalText() ([]byte, error) {
	if g.id == "" {
		return []byte{}, nil
	}
	return []byte(g.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Validates the
// group ID format. An empty input produces the zero value.
func (g *GroupID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*g = GroupID{}
		return nil
	}
	parsed, err := ParseGroupID(string(data))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MustParseGroupID is like ParseGroupID but panics on error. Use in
// tests where the input is known-valid.
func MustParseGroupID(raw string) GroupID {
	id, err := ParseGroupID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseGroupID(%q): %v", raw, err))
	}
	return id
}
