// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "fmt"

// RoomAlias is a validated Matrix room alias (e.g., "#general:example.org").
//
// Aliases are the human-readable names that the directory API resolves
// to opaque RoomIDs. A room argument starting with '#' is parsed into
// this type and resolved before any membership fetch.
type RoomAlias struct {
	alias string
}

// ParseRoomAlias validates and wraps a raw Matrix room alias string.
func ParseRoomAlias(raw string) (RoomAlias, error) {
	if _, _, err := parseSigilID(raw, '#', "room alias"); err != nil {
		return RoomAlias{}, err
	}
	return RoomAlias{alias: raw}, nil
}

// String returns the full room alias string.
func (a RoomAlias) String() string { return a.alias }

// IsZero reports whether the RoomAlias is the zero value (uninitialized).
func (a RoomAlias) IsZero() bool { return a.alias == "" }

// MarshalText implements encoding.TextMarshaler.
func (a RoomAlias) MarshalText() ([]byte, error) {
	if a.alias == "" {
		return []byte{}, nil
	}
	return []byte(a.alias), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Validates the
// room alias format. An empty input produces the zero value.
func (a *RoomAlias) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*a = RoomAlias{}
		return nil
	}
	parsed, err := ParseRoomAlias(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MustParseRoomAlias is like ParseRoomAlias but panics on error. Use in
// tests where the input is known-valid.
func MustParseRoomAlias(raw string) RoomAlias {
	alias, err := ParseRoomAlias(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseRoomAlias(%q): %v", raw, err))
	}
	return alias
}
