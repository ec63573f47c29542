// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/matrixops/groupsync/lib/ref"
)

// ResolveAlias resolves a room alias (e.g., "#general:example.org") to
// a room ID via the directory endpoint. A response without a room_id
// field is an error — nothing downstream can proceed without one.
func (c *Client) ResolveAlias(ctx context.Context, alias ref.RoomAlias) (ref.RoomID, error) {
	path := "/_matrix/client/r0/directory/room/" + url.PathEscape(alias.String())
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return ref.RoomID{}, fmt.Errorf("matrix: resolve alias %q failed: %w", alias, err)
	}

	var response ResolveAliasResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return ref.RoomID{}, fmt.Errorf("matrix: failed to parse resolve alias response: %w", err)
	}
	if response.RoomID.IsZero() {
		return ref.RoomID{}, fmt.Errorf("matrix: resolve alias %q: response missing room_id", alias)
	}
	return response.RoomID, nil
}

// JoinedMembers returns the user IDs currently joined to a room. The
// endpoint responds with a user→profile mapping; only the keys are
// kept. A key that is not a valid user ID fails the whole fetch rather
// than silently shrinking the member set.
func (c *Client) JoinedMembers(ctx context.Context, roomID ref.RoomID) ([]ref.UserID, error) {
	path := fmt.Sprintf("/_matrix/client/r0/rooms/%s/joined_members", url.PathEscape(roomID.String()))
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("matrix: joined members for %q failed: %w", roomID, err)
	}

	var response JoinedMembersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("matrix: failed to parse joined members response: %w", err)
	}

	members := make([]ref.UserID, 0, len(response.Joined))
	for rawUserID := range response.Joined {
		userID, err := ref.ParseUserID(rawUserID)
		if err != nil {
			return nil, fmt.Errorf("matrix: joined members for %q: %w", roomID, err)
		}
		members = append(members, userID)
	}
	return members, nil
}
