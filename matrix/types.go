// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"github.com/matrixops/groupsync/lib/ref"
)

// ResolveAliasResponse is returned by the room directory lookup.
type ResolveAliasResponse struct {
	RoomID ref.RoomID `json:"room_id"`
}

// JoinedMembersResponse is returned by the joined_members endpoint.
// The map keys are the member user IDs; the per-member metadata is
// profile decoration that groupsync discards.
type JoinedMembersResponse struct {
	Joined map[string]JoinedMember `json:"joined"`
}

// JoinedMember is the profile metadata attached to each joined member.
type JoinedMember struct {
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// GroupUsersResponse is returned by the group users endpoint.
type GroupUsersResponse struct {
	Chunk []GroupUser `json:"chunk"`
}

// GroupUser is one entry of a group's user list. The server returns
// more fields (display name, is_privileged, ...); only the user ID is
// consumed.
type GroupUser struct {
	UserID string `json:"user_id"`
}
