// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

// Package matrix is a minimal Matrix client-server API client covering
// the operations groupsync needs: room alias resolution, joined-member
// listing, and the group (community) user list and admin membership
// endpoints.
//
// The client is pinned to the r0 API generation because the groups API
// never moved past it. The access token travels as the access_token
// query parameter on every request, which is how the group admin
// endpoints expect to be authenticated.
//
// Non-2xx responses decode into *MatrixError carrying the errcode,
// message, and HTTP status; use IsMatrixError to match a specific code.
package matrix
