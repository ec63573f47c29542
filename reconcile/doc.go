// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

// Package reconcile computes and applies the membership difference
// between a Matrix room and a Matrix group.
//
// The diff is a fold over both member sets into a signed tally: +1 for
// each room member, −1 for each group member. After folding, every
// user's tally is +1 (room-only, needs a group invite), −1 (group-only,
// needs removal), or 0 (present in both, no action). The fold is
// commutative, so iteration order never matters.
//
// Applying the resulting plan is best-effort per user: group membership
// mutations are not transactional across users on the homeserver, so
// one failed call is logged and the rest proceed.
package reconcile
