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

// GroupUsers returns the user IDs in a group's member list. An entry
// without a valid user_id fails the whole fetch — a partial member set
// would make the subsequent diff destructive.
func (c *Client) GroupUsers(ctx context.Context, groupID ref.GroupID) ([]ref.UserID, error) {
	path := fmt.Sprintf("/_matrix/client/r0/groups/%s/users", url.PathEscape(groupID.String()))
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("matrix: group users for %q failed: %w", groupID, err)
	}

	var response GroupUsersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("matrix: failed to parse group users response: %w", err)
	}

	members := make([]ref.UserID, 0, len(response.Chunk))
	for index, entry := range response.Chunk {
		if entry.UserID == "" {
			return nil, fmt.Errorf("matrix: group users for %q: entry %d missing user_id", groupID, index)
		}
		userID, err := ref.ParseUserID(entry.UserID)
		if err != nil {
			return nil, fmt.Errorf("matrix: group users for %q: %w", groupID, err)
		}
		members = append(members, userID)
	}
	return members, nil
}

// GroupInviteUser invites a user to a group via the group admin API.
// The PUT is idempotent on the server side; the response body is ignored.
func (c *Client) GroupInviteUser(ctx context.Context, groupID ref.GroupID, userID ref.UserID) error {
	path := fmt.Sprintf("/_matrix/client/r0/groups/%s/admin/users/invite/%s",
		url.PathEscape(groupID.String()),
		url.PathEscape(userID.String()),
	)
	if _, err := c.doRequest(ctx, http.MethodPut, path, struct{}{}); err != nil {
		return fmt.Errorf("matrix: invite %q to group %q failed: %w", userID, groupID, err)
	}
	return nil
}

// GroupRemoveUser removes a user from a group via the group admin API.
// The PUT is idempotent on the server side; the response body is ignored.
func (c *Client) GroupRemoveUser(ctx context.Context, groupID ref.GroupID, userID ref.UserID) error {
	path := fmt.Sprintf("/_matrix/client/r0/groups/%s/admin/users/remove/%s",
		url.PathEscape(groupID.String()),
		url.PathEscape(userID.String()),
	)
	if _, err := c.doRequest(ctx, http.MethodPut, path, struct{}{}); err != nil {
		return fmt.Errorf("matrix: remove %q from group %q failed: %w", userID, groupID, err)
	}
	return nil
}
