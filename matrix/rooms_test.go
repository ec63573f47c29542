// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"testing"

	"github.com/matrixops/groupsync/lib/ref"
)

func mustRoomID(t *testing.T, raw string) ref.RoomID {
	t.Helper()
	return ref.MustParseRoomID(raw)
}

func mustUserID(t *testing.T, raw string) ref.UserID {
	t.Helper()
	return ref.MustParseUserID(raw)
}

func TestResolveAlias(t *testing.T) {
	t.Run("resolves to room ID", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			// The alias sigil and colon must be percent-encoded in the path.
			if request.URL.EscapedPath() != "/_matrix/client/r0/directory/room/%23general:example.org" {
				t.Errorf("unexpected path: %s", request.URL.EscapedPath())
			}
			if request.Method != http.MethodGet {
				t.Errorf("unexpected method: %s", request.Method)
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{
				"room_id": "!resolved:example.org",
				"servers": []string{"example.org"},
			})
		})

		roomID, err := client.ResolveAlias(context.Background(), ref.MustParseRoomAlias("#general:example.org"))
		if err != nil {
			t.Fatalf("ResolveAlias failed: %v", err)
		}
		if roomID.String() != "!resolved:example.org" {
			t.Errorf("room ID = %q, want %q", roomID, "!resolved:example.org")
		}
	})

	t.Run("missing room_id is an error", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{"servers": []string{"example.org"}})
		})

		_, err := client.ResolveAlias(context.Background(), ref.MustParseRoomAlias("#general:example.org"))
		if err == nil {
			t.Fatal("expected error for response without room_id")
		}
	})

	t.Run("unknown alias", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusNotFound)
			json.NewEncoder(writer).Encode(MatrixError{Code: ErrCodeNotFound, Message: "Room alias not found"})
		})

		_, err := client.ResolveAlias(context.Background(), ref.MustParseRoomAlias("#nope:example.org"))
		if !IsMatrixError(err, ErrCodeNotFound) {
			t.Errorf("expected M_NOT_FOUND, got: %v", err)
		}
	})
}

func TestJoinedMembers(t *testing.T) {
	t.Run("extracts member IDs and discards metadata", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.EscapedPath() != "/_matrix/client/r0/rooms/%21abc:example.org/joined_members" {
				t.Errorf("unexpected path: %s", request.URL.EscapedPath())
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{
				"joined": map[string]any{
					"@alice:example.org": map[string]any{"display_name": "Alice", "avatar_url": "mxc://x/1"},
					"@bob:example.org":   map[string]any{"display_name": nil, "avatar_url": nil},
				},
			})
		})

		members, err := client.JoinedMembers(context.Background(), mustRoomID(t, "!abc:example.org"))
		if err != nil {
			t.Fatalf("JoinedMembers failed: %v", err)
		}

		got := make([]string, len(members))
		for index, member := range members {
			got[index] = member.String()
		}
		slices.Sort(got)
		want := []string{"@alice:example.org", "@bob:example.org"}
		if !slices.Equal(got, want) {
			t.Errorf("members = %v, want %v", got, want)
		}
	})

	t.Run("malformed member ID fails the fetch", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{
				"joined": map[string]any{"not-a-user-id": map[string]any{}},
			})
		})

		_, err := client.JoinedMembers(context.Background(), mustRoomID(t, "!abc:example.org"))
		if err == nil {
			t.Fatal("expected error for malformed member ID")
		}
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusForbidden)
			json.NewEncoder(writer).Encode(MatrixError{Code: ErrCodeForbidden, Message: "not in room"})
		})

		_, err := client.JoinedMembers(context.Background(), mustRoomID(t, "!abc:example.org"))
		if !IsMatrixError(err, ErrCodeForbidden) {
			t.Errorf("expected M_FORBIDDEN, got: %v", err)
		}
	})
}
